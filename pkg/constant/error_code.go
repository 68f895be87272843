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

// Client-side error codes.
// https://dev.mysql.com/doc/mysql-errors/8.0/en/client-error-reference.html
const (
	CRUnknownError       = 2000
	CRConnHostError      = 2003
	CRServerGone         = 2006
	CROutOfMemory        = 2008
	CRServerLost         = 2013
	CRCommandsOutOfSync  = 2014
	CRNamedPipeOpenError = 2017
	CRMalformedPacket    = 2027
)

// SQL states.
// https://dev.mysql.com/doc/refman/8.0/en/server-error-reference.html
const (
	SSUnknownSQLState = "HY000"
	SSDataTruncated   = "01000"
	SSDataOutOfRange  = "22003"
)
