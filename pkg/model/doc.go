// Package model defines the tenant-owned resources managed by the console.
//
// # Core Models
//
//   - Producer: a supplier record with a lifecycle Status
//   - Status: Created, In Review, Approved, Rejected
//   - ProducerType: Farm Group, Individual, Cooperative
//   - Coverage: a "k/n" compliance coverage string (e.g. EUDR "1/4")
//
// A Producer's Status is never written through ProducerUpdate; the store
// exposes a dedicated status transition for that.
package model
