package cipherstring

import "strings"

// Family restricts which schemes a field accepts.
type Family string

const (
	// FamilyAny accepts every known scheme.
	FamilyAny Family = ""

	// FamilySymmetric accepts only the AES schemes.
	FamilySymmetric Family = "symmetric"

	// FamilyAsymmetric accepts only the RSA schemes.
	FamilyAsymmetric Family = "asymmetric"
)

// Tag values for presence.
const (
	tagRequired = "required"
	tagOptional = "optional"
)

// validFamilies contains all valid families for tag validation.
var validFamilies = map[Family]bool{
	FamilySymmetric:  true,
	FamilyAsymmetric: true,
}

// IsValidFamily returns true if f is a known, non-empty family.
func IsValidFamily(f Family) bool {
	return validFamilies[f]
}

// Rule is the verification policy for one envelope field.
// The zero Rule accepts an empty value or any well-formed envelope.
type Rule struct {
	Required bool
	Family   Family
}

// ParseRule parses an envelope tag value: "<presence>[,<family>]", where
// presence is "required" or "optional" and family is "symmetric" or
// "asymmetric". Tokens may appear in any order; an empty tag is optional.
func ParseRule(tag string) (Rule, error) {
	var r Rule
	if tag == "" {
		return r, nil
	}
	for _, tok := range strings.Split(tag, ",") {
		tok = strings.TrimSpace(tok)
		switch {
		case tok == tagRequired:
			r.Required = true
		case tok == tagOptional:
			r.Required = false
		case IsValidFamily(Family(tok)):
			r.Family = Family(tok)
		default:
			return Rule{}, newConfigError(ErrInvalidTag, tok, "")
		}
	}
	return r, nil
}

// Check verifies value against the rule. It returns nil or an *EnvelopeError.
func (r Rule) Check(value string) error {
	if value == "" && !r.Required {
		return nil
	}

	res := Validate(value)
	if !res.OK() {
		return res.Err()
	}

	switch r.Family {
	case FamilySymmetric:
		if !res.Scheme.Symmetric() {
			return &EnvelopeError{Err: ErrSchemeNotAllowed, Scheme: res.Scheme}
		}
	case FamilyAsymmetric:
		if res.Scheme.Symmetric() {
			return &EnvelopeError{Err: ErrSchemeNotAllowed, Scheme: res.Scheme}
		}
	}
	return nil
}
