package item

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// EmailRule reports whether an email address is acceptable.
type EmailRule func(email string) bool

// emailPattern accepts local@domain.tld: a lower-case local part of
// letters, digits, '.', '_' or '-', a single alphanumeric domain label and
// a two or three letter suffix.
var emailPattern = regexp.MustCompile(`^[a-z0-9._-]+@[a-zA-Z0-9]+\.[a-zA-Z]{2,3}$`)

// DefaultEmailRule is the EmailRule items are validated with unless
// WithEmailRule overrides it.
func DefaultEmailRule(email string) bool {
	return emailPattern.MatchString(email)
}

const emailTag = "item_email"

// Validator checks Items against their declared constraints.
// It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

type ValidatorOption func(*validatorOptions)

type validatorOptions struct {
	emailRule EmailRule
}

// WithEmailRule replaces the email rule.
func WithEmailRule(rule EmailRule) ValidatorOption {
	return func(o *validatorOptions) {
		if rule != nil {
			o.emailRule = rule
		}
	}
}

// NewValidator builds a Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	o := validatorOptions{emailRule: DefaultEmailRule}
	for _, opt := range opts {
		opt(&o)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(emailTag, func(fl validator.FieldLevel) bool {
		return o.emailRule(fl.Field().String())
	})

	return &Validator{v: v}
}

// Validate returns nil for a valid Item, or a *ValidationError naming every
// violated field.
func (val *Validator) Validate(i Item) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}
