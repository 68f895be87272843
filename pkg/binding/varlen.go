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

	"github.com/dbweave/stmtbind/pkg/constant"
	err2 "github.com/dbweave/stmtbind/pkg/errors"
	"github.com/dbweave/stmtbind/pkg/proto"
	"github.com/dbweave/stmtbind/pkg/schema"
)

// varlenConversion handles blob and narrow text elements. On the parameter
// path the descriptor buffer aliases the application bytes directly; no copy
// occurs. On the result path the row fetch only reports the true byte length
// through the length cell, and grab performs the supplementary single-column
// fetch of the payload.
type varlenConversion struct {
	column     int
	stmt       proto.Statement
	bufferType constant.FieldType
	length     uint32
	buffer     []byte
	external   interface{}
}

func newVarlenConversion(column int, stmt proto.Statement, bufferType constant.FieldType) *varlenConversion {
	return &varlenConversion{
		column:     column,
		stmt:       stmt,
		bufferType: bufferType,
	}
}

func (c *varlenConversion) BindExternal(v interface{}) {
	c.external = v
}

func (c *varlenConversion) Staging() interface{} {
	return &c.buffer
}

func (c *varlenConversion) externalBytes() (*[]byte, error) {
	switch v := c.external.(type) {
	case *schema.Blob:
		return (*[]byte)(v), nil
	case *schema.Text:
		return (*[]byte)(v), nil
	case *[]byte:
		return v, nil
	}
	return nil, errors.Errorf("%s element bound to %T, want *schema.Blob or *schema.Text", c.bufferType, c.external)
}

func (c *varlenConversion) EncodeParam() error {
	data, err := c.externalBytes()
	if err != nil {
		return err
	}
	c.length = uint32(len(*data))
	c.buffer = *data
	return nil
}

func (c *varlenConversion) DecodeResult() error {
	data, err := c.externalBytes()
	if err != nil {
		return err
	}
	return c.grab(data)
}

// grab is the explicit two-phase variable-length retrieval: resize the
// destination to the length the row fetch reported, then re-fetch the column
// payload into it. Zero-length fields skip the supplementary round-trip.
func (c *varlenConversion) grab(dst *[]byte) error {
	if uint32(len(*dst)) != c.length {
		if uint32(cap(*dst)) >= c.length {
			*dst = (*dst)[:c.length]
		} else {
			*dst = make([]byte, c.length)
		}
	}

	if c.length == 0 {
		return nil
	}

	bind := &proto.BindDescriptor{
		BufferType:   c.bufferType,
		Buffer:       dst,
		BufferLength: int(c.length),
		Length:       &c.length,
	}
	if err := c.stmt.FetchColumn(c.column, bind); err != nil {
		return err2.ToSQLError(err)
	}
	return nil
}
