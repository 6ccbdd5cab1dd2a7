package obfuscate

// CaseSensitivity controls how a registry entry's name is compared during lookups
type CaseSensitivity int8

const (
	// CaseSensitive matches names exactly
	CaseSensitive CaseSensitivity = iota
	// CaseInsensitive matches names ignoring case
	CaseInsensitive
)

// String returns the string representation of the comparison mode
func (c CaseSensitivity) String() string {
	switch c {
	case CaseSensitive:
		return "case sensitive"
	case CaseInsensitive:
		return "case insensitive"
	}
	return "unknown"
}
