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

package schema

import "fmt"

// BaseKind is the closed enumeration of semantic element types a schema can
// declare. Signedness and nullability are carried on Kind as orthogonal
// fields, not folded into the enumeration.
type BaseKind byte

const (
	KindTiny BaseKind = iota
	KindShort
	KindInt
	KindBigInt
	KindFloat
	KindDouble
	KindChar
	KindBinary
	KindDate
	KindDateTime
	KindTime
	KindBlob
	KindText
	KindWtext
)

func (k BaseKind) String() string {
	switch k {
	case KindTiny:
		return "TINY"
	case KindShort:
		return "SHORT"
	case KindInt:
		return "INT"
	case KindBigInt:
		return "BIGINT"
	case KindFloat:
		return "FLOAT"
	case KindDouble:
		return "DOUBLE"
	case KindChar:
		return "CHAR"
	case KindBinary:
		return "BINARY"
	case KindDate:
		return "DATE"
	case KindDateTime:
		return "DATETIME"
	case KindTime:
		return "TIME"
	case KindBlob:
		return "BLOB"
	case KindText:
		return "TEXT"
	case KindWtext:
		return "WTEXT"
	default:
		return fmt.Sprintf("%d", k)
	}
}

// Kind is the declared type of one schema element.
type Kind struct {
	Base     BaseKind
	Unsigned bool
	Nullable bool
}

func (k Kind) String() string {
	s := k.Base.String()
	if k.Unsigned {
		s = "UNSIGNED " + s
	}
	if k.Nullable {
		s = "NULLABLE " + s
	}
	return s
}
