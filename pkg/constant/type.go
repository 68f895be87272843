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

package constant

// https://dev.mysql.com/doc/internals/en/com-query-response.html#packet-Protocol::ColumnType
type FieldType byte

const (
	FieldTypeDecimal FieldType = iota
	FieldTypeTiny
	FieldTypeShort
	FieldTypeLong
	FieldTypeFloat
	FieldTypeDouble
	FieldTypeNULL
	FieldTypeTimestamp
	FieldTypeLongLong
	FieldTypeInt24
	FieldTypeDate
	FieldTypeTime
	FieldTypeDateTime
	FieldTypeYear
	FieldTypeNewDate
	FieldTypeVarChar
	FieldTypeBit
)

const (
	FieldTypeJSON FieldType = iota + 0xf5
	FieldTypeNewDecimal
	FieldTypeEnum
	FieldTypeSet
	FieldTypeTinyBLOB
	FieldTypeMediumBLOB
	FieldTypeLongBLOB
	FieldTypeBLOB
	FieldTypeVarString
	FieldTypeString
	FieldTypeGeometry
)

func (typ FieldType) String() string {
	switch typ {
	case FieldTypeDecimal:
		return "DECIMAL"
	case FieldTypeTiny:
		return "TINY"
	case FieldTypeShort:
		return "SHORT"
	case FieldTypeLong:
		return "LONG"
	case FieldTypeFloat:
		return "FLOAT"
	case FieldTypeDouble:
		return "DOUBLE"
	case FieldTypeNULL:
		return "NULL"
	case FieldTypeTimestamp:
		return "TIMESTAMP"
	case FieldTypeLongLong:
		return "LONGLONG"
	case FieldTypeInt24:
		return "INT24"
	case FieldTypeDate:
		return "DATE"
	case FieldTypeTime:
		return "TIME"
	case FieldTypeDateTime:
		return "DATETIME"
	case FieldTypeYear:
		return "YEAR"
	case FieldTypeNewDate:
		return "NEWDATE"
	case FieldTypeVarChar:
		return "VARCHAR"
	case FieldTypeBit:
		return "BIT"
	case FieldTypeJSON:
		return "JSON"
	case FieldTypeNewDecimal:
		return "NEWDECIMAL"
	case FieldTypeEnum:
		return "ENUM"
	case FieldTypeSet:
		return "SET"
	case FieldTypeTinyBLOB:
		return "TINYBLOB"
	case FieldTypeMediumBLOB:
		return "MEDIUMBLOB"
	case FieldTypeLongBLOB:
		return "LONGBLOB"
	case FieldTypeBLOB:
		return "BLOB"
	case FieldTypeVarString:
		return "VARSTRING"
	case FieldTypeString:
		return "STRING"
	case FieldTypeGeometry:
		return "GEOMETRY"
	default:
		return "UNKNOWN"
	}
}

// Flag information.
const (
	NotNullFlag        uint = 1 << 0  /* Field can't be NULL */
	UnsignedFlag       uint = 1 << 5  /* Field is unsigned */
	BinaryFlag         uint = 1 << 7  /* Field is binary   */
	NoDefaultValueFlag uint = 1 << 12 /* Field doesn't have a default value */
)

// HasNotNullFlag checks if NotNullFlag is set.
func HasNotNullFlag(flag uint) bool {
	return (flag & NotNullFlag) > 0
}

// HasUnsignedFlag checks if UnsignedFlag is set.
func HasUnsignedFlag(flag uint) bool {
	return (flag & UnsignedFlag) > 0
}

// HasBinaryFlag checks if BinaryFlag is set.
func HasBinaryFlag(flag uint) bool {
	return (flag & BinaryFlag) > 0
}
