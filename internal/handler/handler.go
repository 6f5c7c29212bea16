// Package handler is the first layer after the router.
//
// It parses requests, runs input validation through the validation
// package, and writes responses. Failures are returned as errors and
// rendered by the global error handler.
package handler
