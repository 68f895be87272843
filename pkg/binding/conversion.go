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
	"github.com/pkg/errors"

	"github.com/dbweave/stmtbind/pkg/proto"
	"github.com/dbweave/stmtbind/pkg/schema"
)

type (
	// Conversion adapts one schema element whose protocol representation
	// differs structurally from its application representation. A conversion
	// is created at prepare time, owns its staging buffer outright, and is
	// mutated on every execution of the statement it belongs to.
	Conversion interface {
		// BindExternal points the conversion at the current call's
		// application-side storage.
		BindExternal(v interface{})

		// Staging returns the pointer the descriptor binds in place of the
		// application storage.
		Staging() interface{}

		// EncodeParam populates the staging buffer from the external value.
		EncodeParam() error

		// DecodeResult reconstructs the external value from the staging
		// buffer after a row fetch.
		DecodeResult() error
	}

	// Conversions is the per-statement converter table, indexed by element
	// position. Elements bound directly to application memory have no entry.
	Conversions map[int]Conversion
)

// Resolve refreshes the descriptors' buffer addresses from the current call's
// set. Nullable wrappers are unwrapped here, recording the null indicator;
// elements with a conversion get its staging buffer substituted as the bound
// pointer.
func Resolve(set schema.Set, conversions Conversions, binds []*proto.BindDescriptor) error {
	if set.NumElements() != len(binds) {
		return errors.Errorf("set has %d elements, statement bound %d", set.NumElements(), len(binds))
	}
	for i := 0; i < set.NumElements(); i++ {
		data := set.Element(i)
		if set.Kind(i).Nullable {
			nv, ok := data.(schema.NullableValue)
			if !ok {
				return errors.Errorf("element %d is declared nullable but %T does not unwrap", i, data)
			}
			binds[i].IsNull = nv.NullFlag()
			data = nv.ValuePtr()
		}
		if conv, ok := conversions[i]; ok {
			conv.BindExternal(data)
			binds[i].Buffer = conv.Staging()
		} else {
			binds[i].Buffer = data
		}
	}
	return nil
}
