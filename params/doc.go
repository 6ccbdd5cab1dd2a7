// Package params implements the core parameter obfuscation engine. It scans
// key1=value1&key2=value2 formatted text, percent decodes the parameter names,
// masks the values of the parameters that were registered with the builder and
// leaves every other byte of the input untouched.
//
// The engine supports two input shapes: a span of an in-memory string
// (ObfuscateText and the ObfuscateString convenience wrappers) and an open
// character stream (ObfuscateReader), which is processed segment by segment as
// each '&' delimiter arrives. StreamTo adapts the engine to incremental writes;
// see Writer for the buffering trade-off that adapter makes.
//
// Output can be capped with LimitTo. Once the configured number of bytes has
// been written, the rest of the obfuscated output is suppressed (the input is
// still fully consumed) and an optional truncation indicator, formatted with
// the total input length, is appended.
package params
