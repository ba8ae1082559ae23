package validation

import (
	"fmt"

	"github.com/docforge/elemid/types"
)

// ValidateSeparator checks that sep is one of the three permitted separator
// values: underscore, hyphen or the empty string.
func ValidateSeparator(sep string) error {
	switch sep {
	case "_", "-", "":
		return nil
	}
	return &types.ConfigError{
		Field:  "separator",
		Reason: fmt.Sprintf(`%q is not one of "_", "-" or ""`, sep),
	}
}

// ValidateFallback checks that the fallback token is itself a legacy-valid
// identifier: non-empty, starting with an ASCII letter, with the remaining
// characters drawn from ASCII letters, digits, underscore and hyphen. The
// token is trusted verbatim during generation, so it must be proven safe
// here.
func ValidateFallback(fallback string) error {
	if fallback == "" {
		return &types.ConfigError{Field: "fallback", Reason: "token cannot be empty"}
	}
	for i, r := range fallback {
		if i == 0 {
			if !isASCIILetter(r) {
				return &types.ConfigError{
					Field:  "fallback",
					Reason: fmt.Sprintf("token %q must start with an ASCII letter", fallback),
				}
			}
			continue
		}
		if !isASCIILetter(r) && !isASCIIDigit(r) && r != '_' && r != '-' {
			return &types.ConfigError{
				Field:  "fallback",
				Reason: fmt.Sprintf("token %q contains disallowed character %q", fallback, r),
			}
		}
	}
	return nil
}

// ClassifyOwner sorts an owner value into a document or a concrete entity.
// An entity owner must be attached to a document; anything that is neither a
// document nor an entity is a type mismatch.
func ClassifyOwner(owner interface{}) (types.Document, types.Entity, error) {
	switch o := owner.(type) {
	case nil:
		return nil, nil, &types.ConfigError{
			Field:  "owner",
			Reason: "an owning document or entity is required",
		}
	case types.Document:
		return o, nil, nil
	case types.Entity:
		doc := o.Document()
		if doc == nil {
			return nil, nil, &types.ConfigError{
				Field:  "owner",
				Reason: "entity is not attached to a document",
			}
		}
		return doc, o, nil
	}
	return nil, nil, &types.TypeMismatchError{Expected: "document or entity", Got: owner}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
