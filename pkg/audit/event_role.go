package audit

import "fmt"

// RoleSwitchEvent represents a replacement of the session role
type RoleSwitchEvent struct {
	Actor
	From         string
	To           string
	Success      bool
	ErrorMessage string
}

func (e RoleSwitchEvent) MessageID() string {
	return "role-switch"
}

func (e RoleSwitchEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s switched role from %s to %s", e.UserID, e.From, e.To)
	}
	return withError(fmt.Sprintf("%s tried to switch role to %s", e.UserID, e.To), e.ErrorMessage)
}

func (e RoleSwitchEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e RoleSwitchEvent) Facility() int {
	return FacilityAuth
}

func (e RoleSwitchEvent) StructuredData() map[string]map[string]string {
	sd := e.Actor.structuredData("role-switch", e.Success)
	sd[SDIDSubject] = map[string]string{
		"from": e.From,
		"to":   e.To,
	}
	return sd
}
