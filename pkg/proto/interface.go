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

//go:generate mockgen -destination=../../testdata/mock_session.go -package=testdata . Session
//go:generate mockgen -destination=../../testdata/mock_statement.go -package=testdata . Statement
package proto

// Session is the connection-scoped surface of the underlying client library.
// Every call is a synchronous, blocking network round-trip. Implementations
// must capture the server message and errno at the failing call and surface
// them as *errors.SQLError; no out-of-band last-error state is consulted by
// this layer.
type Session interface {
	// Connect establishes the session and selects dbName.
	Connect(network, address, user, passwd, dbName string) error

	// SetCharacterSet negotiates the connection character set.
	SetCharacterSet(charset string) error

	// InitStatement allocates a fresh statement handle on this session.
	InitStatement() (Statement, error)

	Close() error
}

// Statement is the statement-scoped surface of the underlying client library.
// Fetch returns io.EOF once the result stream is exhausted.
type Statement interface {
	Prepare(query string) error

	// BindParams hands the parameter descriptors to the client library.
	// A nil slice means the statement takes no parameters.
	BindParams(binds []*BindDescriptor) error

	// BindResult hands the result descriptors to the client library. The
	// descriptors stay in effect for subsequent Fetch calls until rebound.
	BindResult(binds []*BindDescriptor) error

	Execute() error

	// Fetch retrieves the next row into the bound result buffers. Fixed-size
	// columns are written in place; variable-length columns only have their
	// true byte length stored through BindDescriptor.Length, leaving the
	// payload to a FetchColumn call.
	Fetch() error

	// FetchColumn re-fetches a single column of the current row into bind,
	// which must carry a buffer of exactly the reported length.
	FetchColumn(column int, bind *BindDescriptor) error

	AffectedRows() uint64
	LastInsertID() uint64

	FreeResult() error
	Reset() error
	Close() error
}
