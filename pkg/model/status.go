package model

//go:generate go run github.com/dmarkham/enumer -type Status -trimprefix Status -linecomment -json -yaml -output status.gen.go
type Status int

const (
	StatusCreated  Status = iota // Created
	StatusInReview               // In Review
	StatusApproved               // Approved
	StatusRejected               // Rejected
)

// ParseStatus accepts the display name ("In Review"), its lowercase form, or
// the compact form used in query strings ("in-review", "InReview").
func ParseStatus(s string) (Status, bool) {
	if st, err := StatusString(s); err == nil {
		return st, true
	}
	switch normalizeToken(s) {
	case "created":
		return StatusCreated, true
	case "inreview":
		return StatusInReview, true
	case "approved":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	}
	return 0, false
}
