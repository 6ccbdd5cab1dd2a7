package params

import (
	"fmt"

	"github.com/robtimus/obfuscation-http/obfuscate"
	"github.com/robtimus/obfuscation-http/percent"
)

// Builder collects the configuration of an Obfuscator. Parameter names are
// matched case sensitively unless the default is switched; the default applies
// to parameters added after the switch only.
type Builder struct {
	registry     *obfuscate.RegistryBuilder
	encoding     *percent.Encoding
	limit        int
	limited      bool
	indicator    string
	hasIndicator bool
}

// NewBuilder creates a builder with UTF-8 encoding, no output limit and case
// sensitive parameter matching
func NewBuilder() *Builder {
	return &Builder{
		registry:     obfuscate.NewRegistryBuilder(),
		encoding:     percent.UTF8,
		indicator:    DefaultTruncatedIndicator,
		hasIndicator: true,
	}
}

// WithParameter registers an obfuscator for a parameter name using the current
// case sensitivity default
func (b *Builder) WithParameter(name string, obfuscator obfuscate.Obfuscator) *Builder {
	b.registry.WithEntry(name, obfuscator)
	return b
}

// WithParameterSensitivity registers an obfuscator for a parameter name with an
// explicit case sensitivity
func (b *Builder) WithParameterSensitivity(name string, obfuscator obfuscate.Obfuscator, sensitivity obfuscate.CaseSensitivity) *Builder {
	b.registry.WithEntrySensitivity(name, obfuscator, sensitivity)
	return b
}

// CaseSensitiveByDefault makes subsequently added parameters match case
// sensitively. This is the initial state of a new builder.
func (b *Builder) CaseSensitiveByDefault() *Builder {
	b.registry.CaseSensitiveByDefault()
	return b
}

// CaseInsensitiveByDefault makes subsequently added parameters match case
// insensitively
func (b *Builder) CaseInsensitiveByDefault() *Builder {
	b.registry.CaseInsensitiveByDefault()
	return b
}

// WithEncoding sets the character encoding used to decode parameter names and
// values and to encode obfuscated values. The default is percent.UTF8.
func (b *Builder) WithEncoding(encoding *percent.Encoding) *Builder {
	b.encoding = encoding
	return b
}

// LimitTo caps the obfuscated output at limit bytes. The returned sub-builder
// customises what happens at the limit; by default the truncation indicator
// DefaultTruncatedIndicator is appended. A negative limit fails the final Build
// call with ErrNegativeLimit.
func (b *Builder) LimitTo(limit int) *LimitBuilder {
	b.limit = limit
	b.limited = true
	return &LimitBuilder{builder: b}
}

// Build returns the immutable engine, or the first configuration error
func (b *Builder) Build() (*Obfuscator, error) {
	if b.limited && b.limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, b.limit)
	}
	registry, err := b.registry.Build()
	if err != nil {
		return nil, err
	}
	o := &Obfuscator{
		registry: registry,
		encoding: b.encoding,
		limit:    -1,
	}
	if b.limited {
		o.limit = b.limit
		o.indicator = b.indicator
		o.hasIndicator = b.hasIndicator
	}
	return o, nil
}

// LimitBuilder configures the behaviour at the output limit
type LimitBuilder struct {
	builder *Builder
}

// WithTruncatedIndicator sets the fmt template, containing one %d verb for the
// total input length, appended once output gets truncated
func (lb *LimitBuilder) WithTruncatedIndicator(template string) *LimitBuilder {
	lb.builder.indicator = template
	lb.builder.hasIndicator = true
	return lb
}

// WithoutTruncatedIndicator makes output simply stop at the limit, with nothing
// appended
func (lb *LimitBuilder) WithoutTruncatedIndicator() *LimitBuilder {
	lb.builder.indicator = ""
	lb.builder.hasIndicator = false
	return lb
}

// Build returns the immutable engine, or the first configuration error
func (lb *LimitBuilder) Build() (*Obfuscator, error) {
	return lb.builder.Build()
}
