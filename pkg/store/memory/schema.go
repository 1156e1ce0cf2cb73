package memory

import (
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

const (
	tableProducers = "producers"

	indexID          = "id"
	indexTenantID    = "tenant_id"
	indexTenantOrder = "tenant_order"
)

// record is the stored form of a producer. Order is a zero-padded insertion
// sequence, so lexical index order is insertion order.
type record struct {
	Order string
	model.Producer
}

func orderKey(seq uint64) string {
	return fmt.Sprintf("%020d", seq)
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableProducers: {
				Name: tableProducers,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexTenantID: {
						Name:   indexTenantID,
						Unique: true,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "TenantID"},
								&memdb.StringFieldIndex{Field: "ID"},
							},
						},
					},
					indexTenantOrder: {
						Name:   indexTenantOrder,
						Unique: true,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "TenantID"},
								&memdb.StringFieldIndex{Field: "Order"},
							},
						},
					},
				},
			},
		},
	}
}
