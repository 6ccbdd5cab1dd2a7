package params

import "io"

// limitWriter stops forwarding to the destination once the configured number of
// bytes has been written. Further input is accepted and discarded so that the
// engine can keep consuming its source after the limit is reached. A limit of
// -1 disables suppression.
type limitWriter struct {
	destination io.Writer
	remaining   int
	limited     bool
	hit         bool
}

func newLimitWriter(destination io.Writer, limit int) *limitWriter {
	return &limitWriter{destination: destination, remaining: limit, limited: limit >= 0}
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if !w.limited {
		return w.destination.Write(p)
	}
	if w.remaining == 0 {
		if len(p) > 0 {
			w.hit = true
		}
		return len(p), nil
	}
	if len(p) > w.remaining {
		w.hit = true
		n, err := w.destination.Write(p[:w.remaining])
		w.remaining -= n
		if err != nil {
			return n, err
		}
		return len(p), nil
	}
	n, err := w.destination.Write(p)
	w.remaining -= n
	return n, err
}

// truncated reports whether any byte was suppressed
func (w *limitWriter) truncated() bool {
	return w.hit
}
