package obfuscate

import "errors"

var (
	// ErrNilObfuscator will be raised when a nil Obfuscator is added to a registry
	ErrNilObfuscator = errors.New("obfuscator cannot be nil")
	// ErrNilDestination will be raised when a nil destination writer is provided
	ErrNilDestination = errors.New("destination cannot be nil")
	// ErrDuplicateKey will be raised when a name is registered twice under the same case sensitivity
	ErrDuplicateKey = errors.New("duplicate key")
)
