package params

import "errors"

var (
	// ErrNegativeLimit will be raised by Build when a negative output limit was configured
	ErrNegativeLimit = errors.New("limit cannot be negative")
	// ErrIndexOutOfRange will be raised when a [start, end) span does not fit the provided text
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrWriterClosed will be raised when writing to an already closed Writer
	ErrWriterClosed = errors.New("writer is closed")
	// ErrNilSource will be raised when a nil input reader is provided
	ErrNilSource = errors.New("source cannot be nil")
)
