// Package query filters, counts and paginates producer listings.
//
// Run is a pure function of its inputs: the same items, tenant, filter and
// page always give the same Result. Items outside the requested tenant never
// reach the filter stage. Results keep the order of the input slice; there is
// no sorting.
//
// View wraps Run with the state a listing screen keeps between requests. Any
// change to the filter or the page size moves the view back to the first
// page. consolectl lists producers through a View. HTTP requests carry their
// page explicitly, so API clients reset it themselves when their filter
// changes.
package query
