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

package proto

import (
	"github.com/dbweave/stmtbind/pkg/constant"
)

type (
	// Time is the fixed-layout temporal record of the binary protocol,
	// the MYSQL_TIME analog. DATE uses the calendar fields only, TIME uses
	// the clock fields plus Neg, DATETIME uses both.
	Time struct {
		Year   uint16
		Month  uint8
		Day    uint8
		Hour   uint32
		Minute uint8
		Second uint8
		Neg    bool
	}

	// BindDescriptor tells the client library where to read a parameter
	// value from or write a result value to. Buffer holds a non-owning
	// pointer into either application storage or a conversion's staging
	// area; it is resolved fresh on every execution. Length and IsNull are
	// shared cells: the client library writes the true column length and
	// the null flag through them on fetch, and reads them on bind.
	BindDescriptor struct {
		BufferType   constant.FieldType
		IsUnsigned   bool
		Buffer       interface{}
		BufferLength int
		Length       *uint32
		IsNull       *bool
	}
)
