package atom

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a feed model against the struct tags before it is handed
// to the serializer. The serializer itself never validates; callers that
// build models from untrusted input can use this to fail early.
func Validate(f *Feed) error {
	return validate.Struct(f)
}
