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

package errors

import "fmt"

// TranscodeError reports a wide-text encode/decode that failed to fully
// convert its input or output. Unlike SQLError it carries no server code:
// the failure is purely client side.
type TranscodeError struct {
	Message string
}

// NewTranscodeError creates a new TranscodeError.
func NewTranscodeError(format string, args ...interface{}) *TranscodeError {
	return &TranscodeError{Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (te *TranscodeError) Error() string {
	return fmt.Sprintf("character set transcoding failed: %s", te.Message)
}
