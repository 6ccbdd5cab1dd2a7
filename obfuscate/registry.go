package obfuscate

import (
	"fmt"
	"strings"
)

type entry struct {
	name        string
	obfuscator  Obfuscator
	sensitivity CaseSensitivity
}

func (e entry) key() string {
	if e.sensitivity == CaseInsensitive {
		return strings.ToLower(e.name)
	}
	return e.name
}

// Registry is an immutable mapping from parameter or header names to obfuscators.
// Each entry carries the case sensitivity it was registered with. A nil Registry
// behaves as an empty one.
type Registry struct {
	sensitive   map[string]Obfuscator
	insensitive map[string]Obfuscator
	entries     []entry
}

// Lookup returns the obfuscator registered for the given name. Case sensitive
// entries take precedence over case insensitive ones, so an exact-case match
// always wins. The second return value reports whether a match was found; on a
// miss the returned obfuscator is None.
func (r *Registry) Lookup(name string) (Obfuscator, bool) {
	if r == nil {
		return None(), false
	}
	if o, ok := r.sensitive[name]; ok {
		return o, true
	}
	if o, ok := r.insensitive[strings.ToLower(name)]; ok {
		return o, true
	}
	return None(), false
}

// Len returns the number of registered entries
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// String lists the registered entries in insertion order
func (r *Registry) String() string {
	if r == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range r.entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s=%v (%s)", e.name, e.obfuscator, e.sensitivity)
	}
	sb.WriteByte(']')
	return sb.String()
}

// RegistryBuilder collects the entries of a Registry. Builders start out case
// sensitive; CaseSensitiveByDefault and CaseInsensitiveByDefault switch the
// default for subsequently added entries only, and each entry captures the
// default in force at the moment it was added.
type RegistryBuilder struct {
	entries            []entry
	defaultSensitivity CaseSensitivity
	err                error
}

// NewRegistryBuilder creates a new, case sensitive by default, registry builder
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// CaseSensitiveByDefault makes subsequently added entries case sensitive.
// This is the initial state of a new builder.
func (b *RegistryBuilder) CaseSensitiveByDefault() *RegistryBuilder {
	b.defaultSensitivity = CaseSensitive
	return b
}

// CaseInsensitiveByDefault makes subsequently added entries case insensitive
func (b *RegistryBuilder) CaseInsensitiveByDefault() *RegistryBuilder {
	b.defaultSensitivity = CaseInsensitive
	return b
}

// WithEntry adds an entry using the current case sensitivity default
func (b *RegistryBuilder) WithEntry(name string, obfuscator Obfuscator) *RegistryBuilder {
	return b.WithEntrySensitivity(name, obfuscator, b.defaultSensitivity)
}

// WithEntrySensitivity adds an entry with an explicit case sensitivity. Adding a
// name that was already added under the same comparison mode fails the final
// Build call with ErrDuplicateKey. The same name may be registered once case
// sensitively and once case insensitively; Lookup resolves such overlaps in
// favour of the case sensitive entry.
func (b *RegistryBuilder) WithEntrySensitivity(name string, obfuscator Obfuscator, sensitivity CaseSensitivity) *RegistryBuilder {
	if b.err != nil {
		return b
	}
	if obfuscator == nil {
		b.err = fmt.Errorf("%w: %q", ErrNilObfuscator, name)
		return b
	}
	e := entry{name: name, obfuscator: obfuscator, sensitivity: sensitivity}
	for _, existing := range b.entries {
		if existing.sensitivity == sensitivity && existing.key() == e.key() {
			b.err = fmt.Errorf("%w: %q (%s)", ErrDuplicateKey, name, sensitivity)
			return b
		}
	}
	b.entries = append(b.entries, e)
	return b
}

// Build returns the immutable registry, or the first error recorded while
// entries were being added. The builder can be discarded afterwards.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	r := &Registry{
		sensitive:   make(map[string]Obfuscator, len(b.entries)),
		insensitive: make(map[string]Obfuscator, len(b.entries)),
		entries:     append([]entry(nil), b.entries...),
	}
	for _, e := range b.entries {
		if e.sensitivity == CaseInsensitive {
			r.insensitive[e.key()] = e.obfuscator
		} else {
			r.sensitive[e.key()] = e.obfuscator
		}
	}
	return r, nil
}
