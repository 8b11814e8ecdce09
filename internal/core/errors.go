package core

import "errors"

var (
	// ErrUnknownConnection means an operation referenced a connection id the registry has no record of.
	ErrUnknownConnection = errors.New("unknown connection")
	// ErrDuplicateConnection means the transport reused a connection id without reaping the old one.
	ErrDuplicateConnection = errors.New("duplicate connection")
)
