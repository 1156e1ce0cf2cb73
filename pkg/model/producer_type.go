package model

import "strings"

//go:generate go run github.com/dmarkham/enumer -type ProducerType -trimprefix ProducerType -linecomment -json -yaml -output producer_type.gen.go
type ProducerType int

const (
	ProducerTypeFarmGroup   ProducerType = iota + 1 // Farm Group
	ProducerTypeIndividual                          // Individual
	ProducerTypeCooperative                         // Cooperative
)

// ParseProducerType is the ProducerType counterpart of ParseStatus.
func ParseProducerType(s string) (ProducerType, bool) {
	if pt, err := ProducerTypeString(s); err == nil {
		return pt, true
	}
	switch normalizeToken(s) {
	case "farmgroup":
		return ProducerTypeFarmGroup, true
	case "individual":
		return ProducerTypeIndividual, true
	case "cooperative":
		return ProducerTypeCooperative, true
	}
	return 0, false
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
