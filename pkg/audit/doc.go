// Package audit provides audit logging for console operations.
//
// Every authorization decision, producer mutation and role switch made
// through the console can be recorded as an RFC5424 syslog line, or as one
// JSON object per line.
//
// # Event Types
//
//   - CheckEvent: an action or permission decision
//   - CreateEvent, UpdateEvent, DeleteEvent: producer mutations
//   - StatusEvent: a lifecycle transition
//   - RoleSwitchEvent: replacement of the session role
//
// # Usage
//
//	logger := audit.NewLogger(os.Stdout)
//	logger.Log(audit.CheckEvent{Actor: actor, Subject: p.ID, Privilege: "delete"})
package audit
