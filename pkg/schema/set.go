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

type (
	// Set is one self-describing row of parameter or result elements. The
	// storage behind Element is owned by the caller; a bind/convert cycle
	// borrows it and never copies or retains it past the call.
	Set interface {
		NumElements() int

		// Kind returns the declared type of element i.
		Kind(i int) Kind

		// Element returns a pointer to the application-side storage of
		// element i, e.g. *int32, *time.Time or *Nullable[Text].
		Element(i int) interface{}

		// Size returns the declared maximum byte length of element i.
		// Only fixed-size character/binary elements carry one.
		Size(i int) int
	}

	// SetContainer is an expandable ordered sequence of row Sets. Manufacture
	// appends a fresh row and returns it; Trim drops the trailing row that the
	// fetch loop manufactured but never filled.
	SetContainer interface {
		Manufacture() Set
		Trim()
	}

	// NullableValue is the unwrapping surface of a nullable element value.
	NullableValue interface {
		// NullFlag returns the nullness cell, bound as the descriptor's
		// null indicator.
		NullFlag() *bool

		// ValuePtr returns a pointer to the wrapped value's storage.
		ValuePtr() interface{}
	}
)

// Element is one column/parameter description for the slice-backed Set.
type Element struct {
	Kind  Kind
	Value interface{}
	Size  int
}

// Elements is a slice-backed Set.
type Elements []Element

func (e Elements) NumElements() int {
	return len(e)
}

func (e Elements) Kind(i int) Kind {
	return e[i].Kind
}

func (e Elements) Element(i int) interface{} {
	return e[i].Value
}

func (e Elements) Size(i int) int {
	return e[i].Size
}

// Rows is a slice-backed SetContainer. The factory manufactures one row Set
// with fresh storage; all rows it produces must declare identical kinds.
type Rows struct {
	sets    []Set
	factory func() Set
}

func NewRows(factory func() Set) *Rows {
	return &Rows{factory: factory}
}

func (r *Rows) Manufacture() Set {
	set := r.factory()
	r.sets = append(r.sets, set)
	return set
}

func (r *Rows) Trim() {
	if len(r.sets) > 0 {
		r.sets = r.sets[:len(r.sets)-1]
	}
}

func (r *Rows) Len() int {
	return len(r.sets)
}

// Row returns the i-th fetched row.
func (r *Rows) Row(i int) Set {
	return r.sets[i]
}
