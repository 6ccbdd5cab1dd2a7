package obfuscate

import (
	"strings"
	"testing"

	"github.com/robtimus/obfuscation-http/assert"
)

func TestRegistryLookup(t *testing.T) {
	testCases := []struct {
		title       string
		build       func(*RegistryBuilder)
		name        string
		expectMatch bool
		expected    string
	}{
		{
			title: "case_sensitive_entry_matches_exactly",
			build: func(b *RegistryBuilder) {
				b.WithEntry("foo", FixedValue("matched"))
			},
			name:        "foo",
			expectMatch: true,
			expected:    "matched",
		},
		{
			title: "case_sensitive_entry_rejects_other_casing",
			build: func(b *RegistryBuilder) {
				b.WithEntry("foo", FixedValue("matched"))
			},
			name: "FOO",
		},
		{
			title: "case_insensitive_entry_matches_any_casing",
			build: func(b *RegistryBuilder) {
				b.WithEntrySensitivity("foo", FixedValue("matched"), CaseInsensitive)
			},
			name:        "FoO",
			expectMatch: true,
			expected:    "matched",
		},
		{
			title: "case_sensitive_entry_wins_over_a_case_insensitive_one",
			build: func(b *RegistryBuilder) {
				b.WithEntrySensitivity("foo", FixedValue("insensitive"), CaseInsensitive)
				b.WithEntrySensitivity("Foo", FixedValue("sensitive"), CaseSensitive)
			},
			name:        "Foo",
			expectMatch: true,
			expected:    "sensitive",
		},
		{
			title: "mixed_sensitivity_entries_are_independent",
			build: func(b *RegistryBuilder) {
				b.WithEntrySensitivity("foo", FixedValue("insensitive"), CaseInsensitive)
				b.WithEntrySensitivity("Foo", FixedValue("sensitive"), CaseSensitive)
			},
			name:        "FOO",
			expectMatch: true,
			expected:    "insensitive",
		},
		{
			title: "default_sensitivity_is_captured_when_the_entry_is_added",
			build: func(b *RegistryBuilder) {
				b.WithEntry("early", FixedValue("sensitive"))
				b.CaseInsensitiveByDefault()
				b.WithEntry("late", FixedValue("insensitive"))
			},
			name:        "LATE",
			expectMatch: true,
			expected:    "insensitive",
		},
		{
			title: "switching_the_default_does_not_affect_earlier_entries",
			build: func(b *RegistryBuilder) {
				b.WithEntry("early", FixedValue("sensitive"))
				b.CaseInsensitiveByDefault()
				b.WithEntry("late", FixedValue("insensitive"))
			},
			name: "EARLY",
		},
		{
			title: "empty_name_is_a_valid_entry",
			build: func(b *RegistryBuilder) {
				b.WithEntry("", FixedValue("matched"))
			},
			name:        "",
			expectMatch: true,
			expected:    "matched",
		},
		{
			title: "unregistered_name_misses",
			build: func(b *RegistryBuilder) {
				b.WithEntry("foo", FixedValue("matched"))
			},
			name: "bar",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			fields := assert.Fields{"name": tc.name}

			builder := NewRegistryBuilder()
			tc.build(builder)
			registry, err := builder.Build()
			if !assert.Errors(t, false, err, fields) {
				return
			}

			obfuscator, ok := registry.Lookup(tc.name)
			assert.Equals(t, tc.expectMatch, ok, fields)
			if tc.expectMatch {
				assert.Equals(t, tc.expected, obfuscator.Obfuscate("value"), fields)
			} else {
				// a miss must behave as the identity obfuscator
				assert.Equals(t, "value", obfuscator.Obfuscate("value"), fields)
			}
		})
	}
}

func TestRegistryBuildErrors(t *testing.T) {
	testCases := []struct {
		title    string
		build    func(*RegistryBuilder)
		expected error
	}{
		{
			title: "duplicate_case_sensitive_entry",
			build: func(b *RegistryBuilder) {
				b.WithEntry("foo", All())
				b.WithEntry("foo", All())
			},
			expected: ErrDuplicateKey,
		},
		{
			title: "duplicate_case_insensitive_entry_in_a_different_casing",
			build: func(b *RegistryBuilder) {
				b.CaseInsensitiveByDefault()
				b.WithEntry("foo", All())
				b.WithEntry("FOO", All())
			},
			expected: ErrDuplicateKey,
		},
		{
			title: "nil_obfuscator",
			build: func(b *RegistryBuilder) {
				b.WithEntry("foo", nil)
			},
			expected: ErrNilObfuscator,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			builder := NewRegistryBuilder()
			tc.build(builder)
			_, err := builder.Build()
			assert.ErrorsIs(t, err, tc.expected, nil)
		})
	}
}

func TestNilRegistryBehavesAsEmpty(t *testing.T) {
	var registry *Registry
	obfuscator, ok := registry.Lookup("foo")
	assert.Equals(t, false, ok, nil)
	assert.Equals(t, "value", obfuscator.Obfuscate("value"), nil)
	assert.Equals(t, 0, registry.Len(), nil)
	assert.Equals(t, "[]", registry.String(), nil)
}

func TestRegistryStringListsEntriesInInsertionOrder(t *testing.T) {
	registry, err := NewRegistryBuilder().
		WithEntry("second", All()).
		WithEntry("first", All()).
		Build()
	if !assert.Errors(t, false, err, nil) {
		return
	}

	s := registry.String()
	if strings.Index(s, "second") > strings.Index(s, "first") {
		t.Errorf("Expected insertion order in %q", s)
	}
	assert.Equals(t, 2, registry.Len(), nil)
}
