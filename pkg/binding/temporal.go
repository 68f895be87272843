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
	"time"

	"github.com/pkg/errors"

	"github.com/dbweave/stmtbind/pkg/proto"
	"github.com/dbweave/stmtbind/pkg/schema"
)

// dateConversion stages a calendar date in the protocol temporal record.
type dateConversion struct {
	internal proto.Time
	external interface{}
}

func (c *dateConversion) BindExternal(v interface{}) {
	c.external = v
}

func (c *dateConversion) Staging() interface{} {
	return &c.internal
}

func (c *dateConversion) EncodeParam() error {
	d, ok := c.external.(*schema.Date)
	if !ok {
		return errors.Errorf("DATE element bound to %T, want *schema.Date", c.external)
	}
	c.internal = proto.Time{
		Year:  uint16(d.Year),
		Month: uint8(d.Month),
		Day:   uint8(d.Day),
	}
	return nil
}

func (c *dateConversion) DecodeResult() error {
	d, ok := c.external.(*schema.Date)
	if !ok {
		return errors.Errorf("DATE element bound to %T, want *schema.Date", c.external)
	}
	*d = schema.Date{
		Year:  int(c.internal.Year),
		Month: time.Month(c.internal.Month),
		Day:   int(c.internal.Day),
	}
	return nil
}

// datetimeConversion stages an absolute timestamp in the protocol temporal
// record. Sub-second precision is not preserved.
type datetimeConversion struct {
	internal proto.Time
	external interface{}
	loc      *time.Location
}

func (c *datetimeConversion) BindExternal(v interface{}) {
	c.external = v
}

func (c *datetimeConversion) Staging() interface{} {
	return &c.internal
}

func (c *datetimeConversion) EncodeParam() error {
	t, ok := c.external.(*time.Time)
	if !ok {
		return errors.Errorf("DATETIME element bound to %T, want *time.Time", c.external)
	}
	local := t.In(c.loc)
	year, month, day := local.Date()
	hour, minute, second := local.Clock()
	c.internal = proto.Time{
		Year:   uint16(year),
		Month:  uint8(month),
		Day:    uint8(day),
		Hour:   uint32(hour),
		Minute: uint8(minute),
		Second: uint8(second),
	}
	return nil
}

func (c *datetimeConversion) DecodeResult() error {
	t, ok := c.external.(*time.Time)
	if !ok {
		return errors.Errorf("DATETIME element bound to %T, want *time.Time", c.external)
	}
	*t = time.Date(
		int(c.internal.Year),
		time.Month(c.internal.Month),
		int(c.internal.Day),
		int(c.internal.Hour),
		int(c.internal.Minute),
		int(c.internal.Second),
		0,
		c.loc,
	)
	return nil
}

// timeConversion stages a signed duration in the protocol temporal record.
// The record stores magnitude plus a sign flag; the flag covers the whole
// magnitude, so every negative duration round-trips, including those with a
// zero hour component. Sub-second precision is not preserved.
type timeConversion struct {
	internal proto.Time
	external interface{}
}

func (c *timeConversion) BindExternal(v interface{}) {
	c.external = v
}

func (c *timeConversion) Staging() interface{} {
	return &c.internal
}

func (c *timeConversion) EncodeParam() error {
	dp, ok := c.external.(*time.Duration)
	if !ok {
		return errors.Errorf("TIME element bound to %T, want *time.Duration", c.external)
	}
	d := *dp
	neg := d < 0
	if neg {
		d = -d
	}
	d = d.Truncate(time.Second)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	c.internal = proto.Time{
		Hour:   uint32(hours),
		Minute: uint8(minutes),
		Second: uint8(seconds),
		Neg:    neg,
	}
	return nil
}

func (c *timeConversion) DecodeResult() error {
	dp, ok := c.external.(*time.Duration)
	if !ok {
		return errors.Errorf("TIME element bound to %T, want *time.Duration", c.external)
	}
	d := time.Duration(c.internal.Hour)*time.Hour +
		time.Duration(c.internal.Minute)*time.Minute +
		time.Duration(c.internal.Second)*time.Second
	if c.internal.Neg {
		d = -d
	}
	*dp = d
	return nil
}
