// Package binding registers envelope checks with third-party validation
// libraries, so request and config structs can declare envelope fields next
// to their other constraints.
//
// go-playground/validator:
//
//	v := validator.New()
//	_ = binding.RegisterPlayground(v)
//
//	type Req struct {
//	    Name string `validate:"required,cipherstring"`
//	    Key  string `validate:"omitempty,cipherstring=asymmetric"`
//	}
//
// jellydator/validation:
//
//	validation.ValidateStruct(&req,
//	    validation.Field(&req.Name, validation.Required, binding.Envelope),
//	    validation.Field(&req.Key, binding.EnvelopeOf(cipherstring.FamilyAsymmetric)),
//	)
//
// Both leave presence to the library's own required rule: an empty value
// passes.
package binding
