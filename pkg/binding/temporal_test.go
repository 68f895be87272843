/*
 * Copyright 2023 dbweave, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package binding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbweave/stmtbind/pkg/schema"
)

func TestDateRoundTrip(t *testing.T) {
	in := schema.Date{Year: 2024, Month: time.March, Day: 15}
	out := schema.Date{}

	conv := &dateConversion{}
	conv.BindExternal(&in)
	require.NoError(t, conv.EncodeParam())

	conv.BindExternal(&out)
	require.NoError(t, conv.DecodeResult())
	assert.Equal(t, in, out)
}

func TestDatetimeRoundTrip(t *testing.T) {
	in := time.Date(2024, time.March, 15, 13, 42, 7, 0, time.UTC)
	var out time.Time

	conv := &datetimeConversion{loc: time.UTC}
	conv.BindExternal(&in)
	require.NoError(t, conv.EncodeParam())

	conv.BindExternal(&out)
	require.NoError(t, conv.DecodeResult())
	assert.True(t, in.Equal(out), "want %v, got %v", in, out)
}

func TestDatetimeDropsSubSecond(t *testing.T) {
	in := time.Date(2024, time.March, 15, 13, 42, 7, 999999999, time.UTC)
	var out time.Time

	conv := &datetimeConversion{loc: time.UTC}
	conv.BindExternal(&in)
	require.NoError(t, conv.EncodeParam())

	conv.BindExternal(&out)
	require.NoError(t, conv.DecodeResult())
	assert.Equal(t, time.Date(2024, time.March, 15, 13, 42, 7, 0, time.UTC), out)
}

func TestTimeRoundTrip(t *testing.T) {
	cases := map[string]struct {
		in time.Duration
	}{
		"positive":           {3*time.Hour + 45*time.Minute + 30*time.Second},
		"negative":           {-(3*time.Hour + 45*time.Minute + 30*time.Second)},
		"negative zero hour": {-(30 * time.Minute)},
		"zero":               {0},
		"big hours":          {900 * time.Hour},
	}

	for caseTitle, tc := range cases {
		t.Run(caseTitle, func(t *testing.T) {
			in := tc.in
			var out time.Duration

			conv := &timeConversion{}
			conv.BindExternal(&in)
			require.NoError(t, conv.EncodeParam())

			conv.BindExternal(&out)
			require.NoError(t, conv.DecodeResult())
			assert.Equal(t, tc.in, out)
		})
	}
}

func TestTimeEncodeStoresMagnitudeAndSign(t *testing.T) {
	in := -(3*time.Hour + 45*time.Minute + 30*time.Second)

	conv := &timeConversion{}
	conv.BindExternal(&in)
	require.NoError(t, conv.EncodeParam())

	assert.Equal(t, uint32(3), conv.internal.Hour)
	assert.Equal(t, uint8(45), conv.internal.Minute)
	assert.Equal(t, uint8(30), conv.internal.Second)
	assert.True(t, conv.internal.Neg)
}

func TestTimeDropsSubSecond(t *testing.T) {
	in := 3*time.Second + 500*time.Millisecond
	var out time.Duration

	conv := &timeConversion{}
	conv.BindExternal(&in)
	require.NoError(t, conv.EncodeParam())

	conv.BindExternal(&out)
	require.NoError(t, conv.DecodeResult())
	assert.Equal(t, 3*time.Second, out)
}

func TestTemporalTypeMismatch(t *testing.T) {
	var wrong int

	date := &dateConversion{}
	date.BindExternal(&wrong)
	assert.Error(t, date.EncodeParam())
	assert.Error(t, date.DecodeResult())

	datetime := &datetimeConversion{loc: time.UTC}
	datetime.BindExternal(&wrong)
	assert.Error(t, datetime.EncodeParam())

	duration := &timeConversion{}
	duration.BindExternal(&wrong)
	assert.Error(t, duration.EncodeParam())
}
