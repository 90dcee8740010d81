package binding

import (
	"errors"

	"github.com/jellydator/validation"
	"github.com/zoobzio/cipherstring"
)

// Error codes reported by Envelope and EnvelopeOf.
const (
	CodeType     = "validation_cipherstring_type"
	CodeEnvelope = "validation_cipherstring"
	CodeScheme   = "validation_cipherstring_scheme"
)

// Envelope validates that a string is a well-formed envelope of any scheme.
var Envelope = EnvelopeOf(cipherstring.FamilyAny)

// EnvelopeOf validates that a string is a well-formed envelope whose scheme
// belongs to family.
func EnvelopeOf(family cipherstring.Family) validation.Rule {
	rule := cipherstring.Rule{Family: family}

	return validation.By(func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return validation.NewError(CodeType, "must be a string")
		}

		err := rule.Check(s)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, cipherstring.ErrSchemeNotAllowed):
			return validation.NewError(CodeScheme, "must use a "+string(family)+" scheme")
		default:
			return validation.NewError(CodeEnvelope, "must be a well-formed encrypted string")
		}
	})
}
