// Package store defines the producer storage contract.
//
// Every operation is scoped by tenant: a producer is only visible to, and
// only mutable through, calls that name its own tenant. A lookup that misses,
// including one that names a real id of another tenant, reports false rather
// than an error.
//
// Mutators accept Checks. They run inside the write transaction against the
// producer as committed, so a decision made on them cannot be invalidated by
// a concurrent writer before the mutation lands.
//
// # Implementations
//
//   - memory: in-process store backed by go-memdb
//
// # Usage
//
//	s := memory.New()
//	p, err := s.Create("tenant-1", model.ProducerFields{Name: "Ana Paula Santos"})
//	if err != nil {
//	    if errors.Is(err, model.ErrInvalidProducer) {
//	        // Handle rejected input
//	    }
//	}
//	ok, err := s.Delete("tenant-1", p.ID, func(cur model.Producer) error {
//	    if cur.Status != model.StatusCreated {
//	        return errors.New("only new producers can be removed")
//	    }
//	    return nil
//	})
//	if !ok {
//	    // Nothing was removed
//	}
package store
