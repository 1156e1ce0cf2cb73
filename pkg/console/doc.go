// Package console runs the producer console's actions for the current
// session.
//
// Every mutating operation follows the same sequence: read the session once,
// look up the target in the session's tenant, ask the authorization engine,
// and only then call the store. A denial is returned as ErrDenied and the
// store is not touched. Each decision and mutation is written to the audit
// log, the structured log and the metrics.
package console
