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

	"github.com/dbweave/stmtbind/pkg/constant"
	"github.com/dbweave/stmtbind/pkg/proto"
	"github.com/dbweave/stmtbind/pkg/schema"
)

// Build translates every element of set into a protocol bind descriptor, in
// schema order, allocating a conversion for each element whose protocol
// representation differs from the application one. Descriptors and
// conversions live for the whole statement; buffer addresses are resolved
// per execution via Resolve. The unsigned and nullable variants of a kind
// bind with the same buffer type as the base kind.
func Build(stmt proto.Statement, set schema.Set, loc *time.Location) ([]*proto.BindDescriptor, Conversions, error) {
	n := set.NumElements()
	binds := make([]*proto.BindDescriptor, n)
	conversions := make(Conversions)

	for i := 0; i < n; i++ {
		bind := &proto.BindDescriptor{}
		kind := set.Kind(i)
		bind.IsUnsigned = kind.Unsigned

		switch kind.Base {
		case schema.KindTiny:
			bind.BufferType = constant.FieldTypeTiny

		case schema.KindShort:
			bind.BufferType = constant.FieldTypeShort

		case schema.KindInt:
			bind.BufferType = constant.FieldTypeLong

		case schema.KindBigInt:
			bind.BufferType = constant.FieldTypeLongLong

		case schema.KindFloat:
			bind.BufferType = constant.FieldTypeFloat

		case schema.KindDouble:
			bind.BufferType = constant.FieldTypeDouble

		case schema.KindChar:
			bind.BufferType = constant.FieldTypeString
			bind.BufferLength = set.Size(i)

		case schema.KindBinary:
			bind.BufferType = constant.FieldTypeBLOB
			bind.BufferLength = set.Size(i)

		case schema.KindDate:
			conv := &dateConversion{}
			bind.BufferType = constant.FieldTypeDate
			bind.Buffer = conv.Staging()
			conversions[i] = conv

		case schema.KindDateTime:
			conv := &datetimeConversion{loc: loc}
			bind.BufferType = constant.FieldTypeDateTime
			bind.Buffer = conv.Staging()
			conversions[i] = conv

		case schema.KindTime:
			conv := &timeConversion{}
			bind.BufferType = constant.FieldTypeTime
			bind.Buffer = conv.Staging()
			conversions[i] = conv

		case schema.KindBlob:
			conv := newVarlenConversion(i, stmt, constant.FieldTypeBLOB)
			bind.BufferType = conv.bufferType
			bind.Length = &conv.length
			conversions[i] = conv

		case schema.KindText:
			conv := newVarlenConversion(i, stmt, constant.FieldTypeString)
			bind.BufferType = conv.bufferType
			bind.Length = &conv.length
			conversions[i] = conv

		case schema.KindWtext:
			conv := newWtextConversion(i, stmt)
			bind.BufferType = conv.bufferType
			bind.Length = &conv.length
			conversions[i] = conv

		default:
			return nil, nil, errors.Errorf("unsupported schema kind %s for element %d", kind, i)
		}

		binds[i] = bind
	}

	return binds, conversions, nil
}
