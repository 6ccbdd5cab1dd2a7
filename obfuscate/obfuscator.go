package obfuscate

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const defaultMask = '*'

// Obfuscator is the interface for the types that mask a single text value.
// Implementations must be stateless so that a single instance can be shared
// between any number of registries and engines.
type Obfuscator interface {
	// Obfuscate returns the masked representation of value
	Obfuscate(value string) string
	// ObfuscateTo writes the masked representation of value to the destination
	ObfuscateTo(value string, destination io.Writer) error
}

// None returns an Obfuscator which leaves values untouched
func None() Obfuscator {
	return noneObfuscator{}
}

// All returns an Obfuscator which replaces every character of a value with an
// asterisk. The masked value has the same length as the original.
func All() Obfuscator {
	return allObfuscator{mask: defaultMask}
}

// AllWith behaves like All, masking with the provided character instead of an asterisk
func AllWith(mask rune) Obfuscator {
	return allObfuscator{mask: mask}
}

// FixedLength returns an Obfuscator which replaces a value with a fixed number of
// asterisks, hiding the original length. A negative length counts as zero.
func FixedLength(length int) Obfuscator {
	return FixedLengthWith(length, defaultMask)
}

// FixedLengthWith behaves like FixedLength, masking with the provided character
// instead of an asterisk
func FixedLengthWith(length int, mask rune) Obfuscator {
	if length < 0 {
		length = 0
	}
	return fixedLengthObfuscator{length: length, mask: mask}
}

// FixedValue returns an Obfuscator which replaces every value with the same
// replacement text
func FixedValue(value string) Obfuscator {
	return fixedValueObfuscator{value: value}
}

type noneObfuscator struct{}

func (noneObfuscator) Obfuscate(value string) string {
	return value
}

func (noneObfuscator) ObfuscateTo(value string, destination io.Writer) error {
	return writeTo(value, destination)
}

func (noneObfuscator) String() string {
	return "none"
}

type allObfuscator struct {
	mask rune
}

func (o allObfuscator) Obfuscate(value string) string {
	return strings.Repeat(string(o.mask), utf8.RuneCountInString(value))
}

func (o allObfuscator) ObfuscateTo(value string, destination io.Writer) error {
	return writeTo(o.Obfuscate(value), destination)
}

func (o allObfuscator) String() string {
	return fmt.Sprintf("all(%c)", o.mask)
}

type fixedLengthObfuscator struct {
	length int
	mask   rune
}

func (o fixedLengthObfuscator) Obfuscate(string) string {
	return strings.Repeat(string(o.mask), o.length)
}

func (o fixedLengthObfuscator) ObfuscateTo(value string, destination io.Writer) error {
	return writeTo(o.Obfuscate(value), destination)
}

func (o fixedLengthObfuscator) String() string {
	return fmt.Sprintf("fixedLength(%d,%c)", o.length, o.mask)
}

type fixedValueObfuscator struct {
	value string
}

func (o fixedValueObfuscator) Obfuscate(string) string {
	return o.value
}

func (o fixedValueObfuscator) ObfuscateTo(value string, destination io.Writer) error {
	return writeTo(o.value, destination)
}

func (o fixedValueObfuscator) String() string {
	return fmt.Sprintf("fixedValue(%s)", o.value)
}

func writeTo(masked string, destination io.Writer) error {
	if destination == nil {
		return ErrNilDestination
	}
	_, err := io.WriteString(destination, masked)
	return err
}
