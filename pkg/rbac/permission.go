package rbac

//go:generate go run github.com/dmarkham/enumer -type Permission -trimprefix Permission -transform snake-upper -json -yaml -output permission.gen.go
type Permission int

const (
	// Navigation areas
	PermissionViewSupplierManagement Permission = iota + 1
	PermissionViewShipments
	PermissionViewPublish
	PermissionViewInquiries

	// Producers
	PermissionViewProducers
	PermissionCreateProducer
	PermissionEditProducer
	PermissionDeleteProducer
	PermissionReviewProducer
	PermissionViewProducerDetails

	// Farms
	PermissionViewFarms
)

// ParsePermissions converts tokens such as "EDIT_PRODUCER" into permissions.
// The first unknown token is reported as an error.
func ParsePermissions(tokens []string) ([]Permission, error) {
	perms := make([]Permission, 0, len(tokens))
	for _, token := range tokens {
		p, err := PermissionString(token)
		if err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, nil
}
