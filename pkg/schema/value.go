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

import (
	"fmt"
	"time"
)

type (
	// Date is a calendar date without a time-of-day component.
	Date struct {
		Year  int
		Month time.Month
		Day   int
	}

	// Blob is an expandable byte sequence bound as a BLOB column.
	Blob []byte

	// Text is an expandable byte sequence bound as a character column in the
	// connection character set.
	Text []byte

	// Wtext is a wide-character string held as UTF-16 code units. It is
	// transcoded to and from UTF-8 bytes on the wire.
	Wtext []uint16
)

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns the midnight instant of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Nullable wraps an element value with a nullness flag. Unwrapping it binds
// the same way as the bare value plus a null indicator.
type Nullable[T any] struct {
	Val  T
	Null bool
}

func (n *Nullable[T]) NullFlag() *bool {
	return &n.Null
}

func (n *Nullable[T]) ValuePtr() interface{} {
	return &n.Val
}
