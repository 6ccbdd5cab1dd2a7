// Package obfuscate implements the single-value obfuscators used to mask sensitive
// text, together with the name-keyed registry that decides which names are masked.
//
// An Obfuscator transforms one text value into its masked representation. The
// concrete obfuscators returned by All, FixedLength, FixedValue and None cover the
// common masking strategies; anything implementing the interface can be registered.
// A Registry maps parameter or header names to obfuscators, with the case
// sensitivity of the comparison captured per entry at registration time.
package obfuscate
