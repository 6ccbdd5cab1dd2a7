package params

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/robtimus/obfuscation-http/obfuscate"
	"github.com/robtimus/obfuscation-http/percent"
)

// DefaultTruncatedIndicator is the format applied to the total input length when
// output gets cut off at the configured limit
const DefaultTruncatedIndicator = "... (total: %d)"

// Obfuscator masks the values of configured parameters inside
// key1=value1&key2=value2 formatted text. It can be used for both query strings
// and form data strings. Instances are immutable and safe for concurrent use.
type Obfuscator struct {
	registry     *obfuscate.Registry
	encoding     *percent.Encoding
	limit        int
	indicator    string
	hasIndicator bool
}

// ObfuscateString obfuscates s in full and returns the result
func (o *Obfuscator) ObfuscateString(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	if err := o.ObfuscateText(s, 0, len(s), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ObfuscateStringTo obfuscates s in full, writing the result to the destination
func (o *Obfuscator) ObfuscateStringTo(s string, destination io.Writer) error {
	return o.ObfuscateText(s, 0, len(s), destination)
}

// ObfuscateText obfuscates the [start, end) span of s, writing the result to the
// destination. Text outside the span is ignored. An invalid span fails with
// ErrIndexOutOfRange before anything is written.
func (o *Obfuscator) ObfuscateText(s string, start, end int, destination io.Writer) error {
	if destination == nil {
		return obfuscate.ErrNilDestination
	}
	if start < 0 || end < start || end > len(s) {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrIndexOutOfRange, start, end, len(s))
	}
	lw := newLimitWriter(destination, o.limit)
	cursor := start
	for {
		i := strings.IndexByte(s[cursor:end], '&')
		if i == -1 {
			break
		}
		i += cursor
		if err := o.maskKeyValue(s[cursor:i], lw); err != nil {
			return err
		}
		if _, err := io.WriteString(lw, "&"); err != nil {
			return err
		}
		cursor = i + 1
	}
	// remainder
	if err := o.maskKeyValue(s[cursor:end], lw); err != nil {
		return err
	}
	return o.appendIndicator(lw, destination, end-start)
}

// ObfuscateReader reads the source until EOF, obfuscating each segment as its
// trailing '&' arrives. The source is always fully consumed, even after the
// output limit has suppressed further writes.
func (o *Obfuscator) ObfuscateReader(source io.Reader, destination io.Writer) error {
	if source == nil {
		return ErrNilSource
	}
	if destination == nil {
		return obfuscate.ErrNilDestination
	}
	lw := newLimitWriter(destination, o.limit)
	br := bufio.NewReader(source)
	var segment bytes.Buffer
	total := 0
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		total++
		if b != '&' {
			segment.WriteByte(b)
			continue
		}
		if err := o.maskKeyValue(segment.String(), lw); err != nil {
			return err
		}
		segment.Reset()
		if _, err := io.WriteString(lw, "&"); err != nil {
			return err
		}
	}
	// remainder
	if err := o.maskKeyValue(segment.String(), lw); err != nil {
		return err
	}
	return o.appendIndicator(lw, destination, total)
}

// ObfuscateParameter masks a single, already decoded parameter value. No percent
// decoding or encoding takes place and no output limit applies. Values of
// unregistered parameters are returned unchanged.
func (o *Obfuscator) ObfuscateParameter(name, value string) string {
	obfuscator, _ := o.registry.Lookup(name)
	return obfuscator.Obfuscate(value)
}

// ObfuscateParameterValue masks a single parameter value, keeping the original
// retrievable from the returned pair
func (o *Obfuscator) ObfuscateParameterValue(name, value string) obfuscate.Obfuscated {
	obfuscator, _ := o.registry.Lookup(name)
	return obfuscate.ObfuscateValue(obfuscator, value)
}

// StreamTo returns a Writer which buffers everything written to it and obfuscates
// the complete buffered text into the destination when the Writer is closed
func (o *Obfuscator) StreamTo(destination io.Writer) (*Writer, error) {
	if destination == nil {
		return nil, obfuscate.ErrNilDestination
	}
	return &Writer{obfuscator: o, destination: destination}, nil
}

// String returns the string representation of the engine configuration
func (o *Obfuscator) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "params.Obfuscator[parameters=%v,encoding=%s", o.registry, o.encoding.Name())
	if o.limit >= 0 {
		fmt.Fprintf(&sb, ",limit=%d", o.limit)
	}
	sb.WriteByte(']')
	return sb.String()
}

// maskKeyValue processes one key=value segment. Segments without '=' and
// segments whose decoded name has no registered obfuscator are copied through
// verbatim, keeping their original percent encoding.
func (o *Obfuscator) maskKeyValue(segment string, destination io.Writer) error {
	i := strings.IndexByte(segment, '=')
	if i == -1 {
		// no value so nothing to mask
		_, err := io.WriteString(destination, segment)
		return err
	}
	name, err := o.encoding.Decode(segment[:i])
	if err != nil {
		return err
	}
	obfuscator, ok := o.registry.Lookup(name)
	if !ok {
		_, err := io.WriteString(destination, segment)
		return err
	}
	value, err := o.encoding.Decode(segment[i+1:])
	if err != nil {
		return err
	}
	if _, err := io.WriteString(destination, segment[:i+1]); err != nil {
		return err
	}
	encoded, err := o.encoding.Encode(obfuscator.Obfuscate(value))
	if err != nil {
		return err
	}
	_, err = io.WriteString(destination, encoded)
	return err
}

// appendIndicator writes the truncation indicator directly to the destination,
// bypassing the limit, once the limit writer reports suppressed output.
func (o *Obfuscator) appendIndicator(lw *limitWriter, destination io.Writer, total int) error {
	if !lw.truncated() || !o.hasIndicator {
		return nil
	}
	_, err := fmt.Fprintf(destination, o.indicator, total)
	return err
}
