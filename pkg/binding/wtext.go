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
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dbweave/stmtbind/pkg/constant"
	err2 "github.com/dbweave/stmtbind/pkg/errors"
	"github.com/dbweave/stmtbind/pkg/proto"
	"github.com/dbweave/stmtbind/pkg/schema"
)

var wideCodec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// wtextConversion handles wide text elements. It is a narrow text conversion
// with a UTF-8 staging buffer in front: parameters are transcoded from
// UTF-16 code units into the staging buffer before binding, and results are
// grabbed into the staging buffer first, then transcoded into the
// application's wide string.
type wtextConversion struct {
	varlenConversion
	staging []byte
}

func newWtextConversion(column int, stmt proto.Statement) *wtextConversion {
	return &wtextConversion{
		varlenConversion: varlenConversion{
			column:     column,
			stmt:       stmt,
			bufferType: constant.FieldTypeString,
		},
	}
}

func (c *wtextConversion) externalWide() (*schema.Wtext, error) {
	w, ok := c.external.(*schema.Wtext)
	if !ok {
		return nil, errors.Errorf("WTEXT element bound to %T, want *schema.Wtext", c.external)
	}
	return w, nil
}

func (c *wtextConversion) EncodeParam() error {
	w, err := c.externalWide()
	if err != nil {
		return err
	}
	out, err := encodeWide(*w)
	if err != nil {
		return err
	}
	c.staging = out
	c.buffer = c.staging
	c.length = uint32(len(c.staging))
	return nil
}

func (c *wtextConversion) DecodeResult() error {
	w, err := c.externalWide()
	if err != nil {
		return err
	}
	if err := c.grab(&c.staging); err != nil {
		return err
	}
	wide, err := decodeWide(c.staging)
	if err != nil {
		return err
	}
	*w = wide
	c.staging = c.staging[:0]
	return nil
}

// encodeWide transcodes UTF-16 code units into UTF-8 bytes.
func encodeWide(w schema.Wtext) ([]byte, error) {
	if len(w) == 0 {
		return nil, nil
	}
	raw := make([]byte, len(w)*2)
	hasReplacement := false
	for i, u := range w {
		binary.LittleEndian.PutUint16(raw[i*2:], u)
		if u == 0xfffd {
			hasReplacement = true
		}
	}
	out, n, err := transform.Bytes(wideCodec.NewDecoder(), raw)
	if err != nil {
		return nil, err2.NewTranscodeError("wide text encode: %v", err)
	}
	if n != len(raw) {
		return nil, err2.NewTranscodeError("wide text encode consumed %d of %d input bytes", n, len(raw))
	}
	// The codec substitutes U+FFFD for unpaired surrogates rather than
	// failing; surface those as malformed input unless the replacement
	// character was already present in the source.
	if !hasReplacement && bytes.Contains(out, []byte(string(utf8.RuneError))) {
		return nil, err2.NewTranscodeError("wide text encode: malformed UTF-16 input")
	}
	return out, nil
}

// decodeWide transcodes UTF-8 bytes into UTF-16 code units.
func decodeWide(b []byte) (schema.Wtext, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if !utf8.Valid(b) {
		return nil, err2.NewTranscodeError("wide text decode: malformed UTF-8 input")
	}
	out, n, err := transform.Bytes(wideCodec.NewEncoder(), b)
	if err != nil {
		return nil, err2.NewTranscodeError("wide text decode: %v", err)
	}
	if n != len(b) {
		return nil, err2.NewTranscodeError("wide text decode consumed %d of %d input bytes", n, len(b))
	}
	if len(out)%2 != 0 {
		return nil, err2.NewTranscodeError("wide text decode produced %d bytes, want a multiple of 2", len(out))
	}
	w := make(schema.Wtext, len(out)/2)
	for i := range w {
		w[i] = binary.LittleEndian.Uint16(out[i*2:])
	}
	return w, nil
}
