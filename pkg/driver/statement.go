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

package driver

import (
	"io"
	"sync"

	"go.uber.org/atomic"

	"github.com/dbweave/stmtbind/pkg/binding"
	err2 "github.com/dbweave/stmtbind/pkg/errors"
	"github.com/dbweave/stmtbind/pkg/log"
	"github.com/dbweave/stmtbind/pkg/proto"
	"github.com/dbweave/stmtbind/pkg/schema"
)

// Statement owns one prepared statement handle together with the binding
// descriptors and conversions built from its parameter and result schemas.
// Descriptors and conversions are built once at prepare time; only buffer
// addresses are refreshed per execution.
type Statement struct {
	conn  *Connection
	stmt  proto.Statement
	query string

	mu sync.Mutex

	paramBindings     []*proto.BindDescriptor
	paramConversions  binding.Conversions
	resultBindings    []*proto.BindDescriptor
	resultConversions binding.Conversions

	closed atomic.Bool
}

// Prepare readies query on a fresh statement handle. params and results are
// schema prototypes: they fix the element kinds for the statement's
// lifetime, while the storage bound on each execution may differ per call.
// Either may be nil for statements without parameters or without rows.
func (c *Connection) Prepare(query string, params, results schema.Set) (*Statement, error) {
	stmt, err := c.session.InitStatement()
	if err != nil {
		return nil, err2.ToSQLError(err)
	}
	if err := stmt.Prepare(query); err != nil {
		if cerr := stmt.Close(); cerr != nil {
			log.Errorf("close statement after failed prepare: %v", cerr)
		}
		return nil, err2.ToSQLError(err)
	}

	s := &Statement{conn: c, stmt: stmt, query: query}
	if params != nil {
		s.paramBindings, s.paramConversions, err = binding.Build(stmt, params, c.cfg.Loc)
		if err != nil {
			if cerr := stmt.Close(); cerr != nil {
				log.Errorf("close statement after failed binding build: %v", cerr)
			}
			return nil, err
		}
	}
	if results != nil {
		s.resultBindings, s.resultConversions, err = binding.Build(stmt, results, c.cfg.Loc)
		if err != nil {
			if cerr := stmt.Close(); cerr != nil {
				log.Errorf("close statement after failed binding build: %v", cerr)
			}
			return nil, err
		}
	}
	return s, nil
}

// Query returns the prepared query text.
func (s *Statement) Query() string {
	return s.query
}

// Execute drives one bind → execute → fetch cycle. The whole call holds the
// statement's lock, so concurrent executions of the same statement instance
// serialize completely. params supplies the current parameter storage (nil
// if the statement takes none). If results is non-nil, one row set is
// manufactured per fetched row and the container is trimmed once the stream
// is exhausted; a non-nil rows then receives the FOUND_ROWS count. Without
// results, rows receives the affected-row count and insertID the last
// insert id, when requested.
//
// After an error the statement is in an indeterminate state; call Reset
// before reusing it. All bound storage is borrowed and must stay valid and
// unmoved until Execute returns.
func (s *Statement) Execute(params schema.Set, results schema.SetContainer, insertID, rows *uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if params != nil {
		if err := binding.Resolve(params, s.paramConversions, s.paramBindings); err != nil {
			return err
		}
		for i := range s.paramBindings {
			if conv, ok := s.paramConversions[i]; ok {
				if err := conv.EncodeParam(); err != nil {
					return err
				}
			}
		}
	}

	if err := s.stmt.BindParams(s.paramBindings); err != nil {
		return err2.ToSQLError(err)
	}
	if err := s.stmt.Execute(); err != nil {
		return err2.ToSQLError(err)
	}

	if results != nil {
		for {
			row := results.Manufacture()
			if err := binding.Resolve(row, s.resultConversions, s.resultBindings); err != nil {
				return err
			}
			if err := s.stmt.BindResult(s.resultBindings); err != nil {
				return err2.ToSQLError(err)
			}

			err := s.stmt.Fetch()
			if err == io.EOF {
				results.Trim()
				break
			}
			if err != nil {
				return err2.ToSQLError(err)
			}

			for i := range s.resultBindings {
				if conv, ok := s.resultConversions[i]; ok {
					if err := conv.DecodeResult(); err != nil {
						return err
					}
				}
			}
		}

		if rows != nil {
			if err := s.conn.FoundRows(rows); err != nil {
				return err
			}
		}
	} else {
		if rows != nil {
			*rows = s.stmt.AffectedRows()
		}
		if insertID != nil {
			*insertID = s.stmt.LastInsertID()
		}
	}

	if err := s.stmt.FreeResult(); err != nil {
		return err2.ToSQLError(err)
	}
	if err := s.stmt.Reset(); err != nil {
		return err2.ToSQLError(err)
	}
	return nil
}

// Reset releases pending result resources and returns the statement to a
// reusable state, e.g. after a failed execution.
func (s *Statement) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stmt.FreeResult(); err != nil {
		return err2.ToSQLError(err)
	}
	if err := s.stmt.Reset(); err != nil {
		return err2.ToSQLError(err)
	}
	return nil
}

// Close releases the statement handle.
func (s *Statement) Close() error {
	if !s.closed.CAS(false, true) {
		return nil
	}
	return s.stmt.Close()
}
