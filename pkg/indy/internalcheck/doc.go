// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static policy checks run as tests over the rest of
// the libindy-go module. It is not intended for external use and the API
// may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the libindy-go library. Use the public API
// provided by pkg/indy and its subpackages instead.
package internalcheck
