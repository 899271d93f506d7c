package model

import (
	"errors"
	"fmt"
)

// Failure classes for one gateway request. Callers map each class to a
// distinct HTTP status, so wrap rather than replace them.
var (
	// ErrInvalidInput covers malformed caller input (credential syntax,
	// dates, composite identifiers). Never reaches the upstream.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamUnavailable covers transport-level failures: the portal
	// could not be reached or timed out.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamRejected covers non-2xx portal responses: the portal is
	// reachable but refused the operation.
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrBadShape covers 2xx responses whose body is missing an expected
	// field or carries the wrong type. The portal is unversioned and
	// shapes drift, so messages name the offending field.
	ErrBadShape = errors.New("unexpected upstream shape")
)

// MissingField reports an absent mandatory field in a 2xx upstream body.
func MissingField(name string) error {
	return fmt.Errorf("%w: value `%s` does not exist", ErrBadShape, name)
}

// MalformedField reports a present field whose value could not be used.
func MalformedField(name string) error {
	return fmt.Errorf("%w: formatting value `%s` failed", ErrBadShape, name)
}
