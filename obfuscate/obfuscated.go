package obfuscate

// Obfuscated pairs a value with its masked textual representation. The original
// value stays retrievable through Value, while String returns the masked form,
// so an Obfuscated can safely be handed to logging code.
type Obfuscated struct {
	value string
	text  string
}

// ObfuscateValue runs value through the obfuscator and returns the resulting pair.
// A nil obfuscator counts as None.
func ObfuscateValue(obfuscator Obfuscator, value string) Obfuscated {
	if obfuscator == nil {
		obfuscator = None()
	}
	return Obfuscated{value: value, text: obfuscator.Obfuscate(value)}
}

// Value returns the original, unmasked value
func (o Obfuscated) Value() string {
	return o.value
}

// String returns the masked representation of the value
func (o Obfuscated) String() string {
	return o.text
}
