package audit

import "fmt"

// CreateEvent represents a producer creation
type CreateEvent struct {
	Actor
	ProducerID   string
	Name         string
	Success      bool
	ErrorMessage string
}

func (e CreateEvent) MessageID() string {
	return "create"
}

func (e CreateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s created producer %s (%s)", e.UserID, e.ProducerID, e.Name)
	}
	return withError(fmt.Sprintf("%s tried to create producer %s", e.UserID, e.Name), e.ErrorMessage)
}

func (e CreateEvent) Severity() Severity {
	return severity(e.Success)
}

func (e CreateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CreateEvent) StructuredData() map[string]map[string]string {
	sd := e.Actor.structuredData("create", e.Success)
	sd[SDIDSubject] = map[string]string{"resource": e.ProducerID}
	return sd
}

// UpdateEvent represents a producer attribute update
type UpdateEvent struct {
	Actor
	ProducerID   string
	Success      bool
	ErrorMessage string
}

func (e UpdateEvent) MessageID() string {
	return "update"
}

func (e UpdateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s updated %s", e.UserID, e.ProducerID)
	}
	return withError(fmt.Sprintf("%s tried to update %s", e.UserID, e.ProducerID), e.ErrorMessage)
}

func (e UpdateEvent) Severity() Severity {
	return severity(e.Success)
}

func (e UpdateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e UpdateEvent) StructuredData() map[string]map[string]string {
	sd := e.Actor.structuredData("update", e.Success)
	sd[SDIDSubject] = map[string]string{"resource": e.ProducerID}
	return sd
}

// DeleteEvent represents a producer removal
type DeleteEvent struct {
	Actor
	ProducerID   string
	Success      bool
	ErrorMessage string
}

func (e DeleteEvent) MessageID() string {
	return "delete"
}

func (e DeleteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s deleted %s", e.UserID, e.ProducerID)
	}
	return withError(fmt.Sprintf("%s tried to delete %s", e.UserID, e.ProducerID), e.ErrorMessage)
}

func (e DeleteEvent) Severity() Severity {
	return severity(e.Success)
}

func (e DeleteEvent) Facility() int {
	return FacilityAuthPriv
}

func (e DeleteEvent) StructuredData() map[string]map[string]string {
	sd := e.Actor.structuredData("delete", e.Success)
	sd[SDIDSubject] = map[string]string{"resource": e.ProducerID}
	return sd
}

// StatusEvent represents a lifecycle transition
type StatusEvent struct {
	Actor
	ProducerID   string
	From         string
	To           string
	Success      bool
	ErrorMessage string
}

func (e StatusEvent) MessageID() string {
	return "status"
}

func (e StatusEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s moved %s from %s to %s", e.UserID, e.ProducerID, e.From, e.To)
	}
	return withError(fmt.Sprintf("%s tried to move %s to %s", e.UserID, e.ProducerID, e.To), e.ErrorMessage)
}

func (e StatusEvent) Severity() Severity {
	return severity(e.Success)
}

func (e StatusEvent) Facility() int {
	return FacilityAuthPriv
}

func (e StatusEvent) StructuredData() map[string]map[string]string {
	sd := e.Actor.structuredData("status", e.Success)
	sd[SDIDSubject] = map[string]string{
		"resource": e.ProducerID,
		"from":     e.From,
		"to":       e.To,
	}
	return sd
}

func severity(success bool) Severity {
	if success {
		return SeverityInfo
	}
	return SeverityWarning
}

func withError(msg, errMsg string) string {
	if errMsg != "" {
		msg += ": " + errMsg
	}
	return msg
}
