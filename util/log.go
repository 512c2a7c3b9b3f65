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

import (
	"fmt"
	"log"
)

// Severity is an RFC 5424 style log severity
type Severity string

// Log severities
const (
	DEBUG Severity = "Debug"
	INFO  Severity = "Informational"
	WARN  Severity = "Warning"
	ERROR Severity = "Error"
	ALERT Severity = "Alert"
)

// LogContext provides the application context for log messages
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for callers that have no
// session of their own
type BasicLogContext struct{}

// AppName implements the LogContext interface
func (ctx *BasicLogContext) AppName() string { return "gimirrai" }

// SessionID implements the LogContext interface
func (ctx *BasicLogContext) SessionID() string { return "" }

// LogRootDir implements the LogContext interface
func (ctx *BasicLogContext) LogRootDir() string { return "" }

// LogAuditInput is the set of fields needed to produce an audit message
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

func writeLog(severity Severity, context LogContext, message string) {
	session := context.SessionID()
	if session == "" {
		session = "-"
	}
	log.Printf("[%s] %s %s: %s", severity, context.AppName(), session, message)
}

// LogInfo logs an informational message
func LogInfo(context LogContext, message string) {
	writeLog(INFO, context, message)
}

// LogAlert logs a message that needs operator attention
func LogAlert(context LogContext, message string) {
	writeLog(ALERT, context, message)
}

// LogSimpleErr logs a message together with its underlying error and
// returns an error carrying both, suitable for handing back to callers
func LogSimpleErr(context LogContext, message string, err error) error {
	result := fmt.Errorf("%s%v", message, err)
	writeLog(ERROR, context, result.Error())
	return result
}

// LogAudit logs an auditable actor/action/actee event
func LogAudit(context LogContext, input LogAuditInput) {
	writeLog(input.Severity, context,
		fmt.Sprintf("[audit] %s: %s: %s: %s", input.Actor, input.Action, input.Actee, input.Message))
}
