package types

// DocumentMode selects the character-set policy for generated identifiers.
// It is derived from the owning document's schema declaration.
type DocumentMode int

const (
	// ModeStrict permits Unicode letters, marks and decimal digits alongside
	// underscore and hyphen, and places no constraint on the first character.
	ModeStrict DocumentMode = iota

	// ModeLegacy permits only ASCII letters, digits, underscore and hyphen,
	// and requires identifiers to start with an ASCII letter.
	ModeLegacy
)

// String returns the string representation of the DocumentMode
func (m DocumentMode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}
