package params

import (
	"bytes"
	"io"
)

// Writer adapts an Obfuscator to incremental, writer-style use. Everything
// written to it is buffered; when the Writer is closed the complete buffered
// text is obfuscated into the destination in a single pass.
//
// The buffering is deliberate: the obfuscation decision for a value depends on
// its parameter name, which may arrive in a later write, so no output can be
// produced before the text is complete. Flush is therefore a no-op.
//
// Close obfuscates the buffer, then closes the destination if it implements
// io.Closer. Closing an already closed Writer does nothing and returns nil;
// writing to a closed Writer fails with ErrWriterClosed.
//
// A Writer holds per-session state and must not be used from multiple
// goroutines.
type Writer struct {
	obfuscator  *Obfuscator
	destination io.Writer
	buffer      bytes.Buffer
	closed      bool
}

// Write appends p to the session buffer
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	return w.buffer.Write(p)
}

// WriteString appends s to the session buffer
func (w *Writer) WriteString(s string) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	return w.buffer.WriteString(s)
}

// WriteByte appends a single byte to the session buffer
func (w *Writer) WriteByte(b byte) error {
	if w.closed {
		return ErrWriterClosed
	}
	return w.buffer.WriteByte(b)
}

// WriteRune appends a single rune to the session buffer
func (w *Writer) WriteRune(r rune) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	return w.buffer.WriteRune(r)
}

// Flush does nothing. Partial text cannot be obfuscated before the final
// parameter name is known, so all processing happens on Close.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrWriterClosed
	}
	return nil
}

// Close obfuscates the buffered text into the destination and closes the
// destination if it implements io.Closer
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	text := w.buffer.String()
	if err := w.obfuscator.ObfuscateText(text, 0, len(text), w.destination); err != nil {
		return err
	}
	if closer, ok := w.destination.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
