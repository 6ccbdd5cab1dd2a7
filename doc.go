// Package obfuscation provides obfuscation of HTTP request parameters and header
// values before they end up in log output. The params package masks the values of
// configured parameters inside key1=value1&key2=value2 formatted text (query strings
// and form data), the headers package masks discrete header values, and the obfuscate
// package provides the single-value obfuscators and the name-keyed registry both of
// them build on.
package obfuscation
