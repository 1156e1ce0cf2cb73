package audit

// Actor identifies who triggered an event.
type Actor struct {
	UserID   string
	Role     string
	TenantID string
	ClientIP string
}

func (a Actor) structuredData(operation string, success bool) map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user":   a.UserID,
			"role":   a.Role,
			"tenant": a.TenantID,
		},
		SDIDAction: {
			"operation": operation,
			"result":    result(success),
		},
	}
	if a.ClientIP != "" {
		sd[SDIDClient] = map[string]string{"ip": a.ClientIP}
	}
	return sd
}
