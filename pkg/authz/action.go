package authz

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -json -yaml -output action.gen.go
type Action int

const (
	ActionView Action = iota + 1
	ActionEdit
	ActionDelete
	ActionReview
)
