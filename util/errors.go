// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import "errors"

// Error is an error with separate log-facing and caller-facing messages.
// LogMsg carries the full detail for the log; SimpleMsg is the sanitized
// message returned to callers. Input optionally records the offending
// input for the log.
type Error struct {
	LogMsg    string
	SimpleMsg string
	Input     string
}

// Error implements the error interface
func (err Error) Error() string {
	if err.SimpleMsg != "" {
		return err.SimpleMsg
	}
	return err.LogMsg
}

// Log writes the detailed form of the error to the log, with an optional
// message prefix, and returns the error for propagation
func (err Error) Log(context LogContext, prefix string) error {
	message := err.LogMsg
	if message == "" {
		message = err.SimpleMsg
	}
	if prefix != "" {
		message = prefix + ": " + message
	}
	if err.Input != "" {
		message += "; input: " + err.Input
	}
	writeLog(ERROR, context, message)
	if err.SimpleMsg != "" {
		return errors.New(err.SimpleMsg)
	}
	return errors.New(message)
}
