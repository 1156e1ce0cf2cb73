package audit

import "fmt"

// CheckEvent represents an authorization decision
type CheckEvent struct {
	Actor
	// Subject is a producer id or a console path.
	Subject   string
	Privilege string
	Allowed   bool
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s checked permission %s on %s: allowed", e.UserID, e.Privilege, e.Subject)
	}
	return fmt.Sprintf("%s checked permission %s on %s: denied", e.UserID, e.Privilege, e.Subject)
}

func (e CheckEvent) Severity() Severity {
	if e.Allowed {
		return SeverityInfo
	}
	return SeverityNotice
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	sd := e.Actor.structuredData("check", e.Allowed)
	sd[SDIDSubject] = map[string]string{
		"resource":  e.Subject,
		"privilege": e.Privilege,
	}
	return sd
}
