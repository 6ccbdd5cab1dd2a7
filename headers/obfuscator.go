// Package headers implements obfuscation of discrete HTTP header values. A header
// value is masked in full by the obfuscator registered for its header name; no
// parsing, percent decoding or output limiting takes place. Header names are
// always compared case insensitively, matching header name semantics.
package headers

import (
	"fmt"
	"io"

	"github.com/robtimus/obfuscation-http/obfuscate"
)

// Obfuscator masks header values by header name. Instances are immutable and
// safe for concurrent use.
type Obfuscator struct {
	registry *obfuscate.Registry
}

// ObfuscateHeader returns the masked value of the named header. Values of
// unregistered headers are returned unchanged.
func (o *Obfuscator) ObfuscateHeader(name, value string) string {
	obfuscator, _ := o.registry.Lookup(name)
	return obfuscator.Obfuscate(value)
}

// ObfuscateHeaderTo writes the masked value of the named header to the destination
func (o *Obfuscator) ObfuscateHeaderTo(name, value string, destination io.Writer) error {
	if destination == nil {
		return obfuscate.ErrNilDestination
	}
	obfuscator, _ := o.registry.Lookup(name)
	return obfuscator.ObfuscateTo(value, destination)
}

// ObfuscateHeaderValue masks the named header's value, keeping the original
// retrievable from the returned pair
func (o *Obfuscator) ObfuscateHeaderValue(name, value string) obfuscate.Obfuscated {
	obfuscator, _ := o.registry.Lookup(name)
	return obfuscate.ObfuscateValue(obfuscator, value)
}

// String returns the string representation of the dispatcher configuration
func (o *Obfuscator) String() string {
	return fmt.Sprintf("headers.Obfuscator[headers=%v]", o.registry)
}

// Builder collects the headers to obfuscate
type Builder struct {
	registry *obfuscate.RegistryBuilder
}

// NewBuilder creates a new header obfuscator builder
func NewBuilder() *Builder {
	return &Builder{registry: obfuscate.NewRegistryBuilder().CaseInsensitiveByDefault()}
}

// WithHeader registers an obfuscator for a header name. Adding the same name
// twice, in any casing, fails the final Build call with ErrDuplicateKey.
func (b *Builder) WithHeader(name string, obfuscator obfuscate.Obfuscator) *Builder {
	b.registry.WithEntry(name, obfuscator)
	return b
}

// Build returns the immutable header obfuscator, or the first configuration error
func (b *Builder) Build() (*Obfuscator, error) {
	registry, err := b.registry.Build()
	if err != nil {
		return nil, err
	}
	return &Obfuscator{registry: registry}, nil
}
