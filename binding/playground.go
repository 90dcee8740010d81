package binding

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/cipherstring"
)

// PlaygroundTag is the validate tag registered by RegisterPlayground.
// An optional parameter restricts the family: cipherstring=symmetric.
const PlaygroundTag = "cipherstring"

// RegisterPlayground registers the cipherstring tag on v.
func RegisterPlayground(v *validator.Validate) error {
	return v.RegisterValidation(PlaygroundTag, validatePlayground)
}

func validatePlayground(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	family := cipherstring.Family(fl.Param())
	if family != cipherstring.FamilyAny && !cipherstring.IsValidFamily(family) {
		return false
	}

	rule := cipherstring.Rule{Family: family}
	return rule.Check(field.String()) == nil
}
