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
	"go.uber.org/atomic"

	"github.com/dbweave/stmtbind/pkg/constant"
	err2 "github.com/dbweave/stmtbind/pkg/errors"
	"github.com/dbweave/stmtbind/pkg/log"
	"github.com/dbweave/stmtbind/pkg/proto"
)

const foundRowsQuery = "SELECT FOUND_ROWS()"

// Connection owns one session handle plus a persistent auxiliary statement
// used solely to recover the server-reported matched-row count after a
// row-producing query. A connection and its statements must be dedicated to
// one concurrent execution context; sharing the session between statements
// executing in parallel is unsafe.
type Connection struct {
	cfg     *Config
	session proto.Session

	foundRows        proto.Statement
	foundRowsBinding proto.BindDescriptor

	closed atomic.Bool
}

// Connect establishes the session, negotiates the character set and prepares
// the auxiliary FOUND_ROWS statement. Any failure surfaces as a coded
// database error and leaves nothing to release.
func Connect(session proto.Session, cfg *Config) (*Connection, error) {
	cfg = cfg.Clone()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	if err := session.Connect(cfg.Net, cfg.Addr, cfg.User, cfg.Passwd, cfg.DBName); err != nil {
		return nil, err2.ToSQLError(err)
	}
	if err := session.SetCharacterSet(cfg.Charset); err != nil {
		return nil, err2.ToSQLError(err)
	}

	stmt, err := session.InitStatement()
	if err != nil {
		return nil, err2.ToSQLError(err)
	}
	if err := stmt.Prepare(foundRowsQuery); err != nil {
		return nil, err2.ToSQLError(err)
	}

	return &Connection{
		cfg:       cfg,
		session:   session,
		foundRows: stmt,
		foundRowsBinding: proto.BindDescriptor{
			BufferType: constant.FieldTypeLongLong,
			IsUnsigned: true,
		},
	}, nil
}

// Config returns the normalized connection settings.
func (c *Connection) Config() *Config {
	return c.cfg.Clone()
}

// FoundRows executes the auxiliary statement and stores the matched-row
// count of the previous query into rows. The binding's buffer address is
// refreshed on every call; the binding itself was built at connect time.
func (c *Connection) FoundRows(rows *uint64) error {
	if err := c.foundRows.BindParams(nil); err != nil {
		return err2.ToSQLError(err)
	}
	if err := c.foundRows.Execute(); err != nil {
		return err2.ToSQLError(err)
	}

	c.foundRowsBinding.Buffer = rows
	if err := c.foundRows.BindResult([]*proto.BindDescriptor{&c.foundRowsBinding}); err != nil {
		return err2.ToSQLError(err)
	}
	if err := c.foundRows.Fetch(); err != nil {
		return err2.ToSQLError(err)
	}

	if err := c.foundRows.FreeResult(); err != nil {
		return err2.ToSQLError(err)
	}
	if err := c.foundRows.Reset(); err != nil {
		return err2.ToSQLError(err)
	}
	return nil
}

// Close releases the auxiliary statement and the session.
func (c *Connection) Close() error {
	if !c.closed.CAS(false, true) {
		return nil
	}
	if err := c.foundRows.Close(); err != nil {
		log.Errorf("close found rows statement: %v", err)
	}
	return c.session.Close()
}
