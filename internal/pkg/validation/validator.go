// Package validation wraps go-playground/validator with English messages keyed
// by form/JSON field names.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/slug"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	slugTag  = "slug"
	slugText = "{0} may only contain lowercase letters, digits and single hyphens"

	notBlankTag  = "notblank"
	notBlankText = "This field is required."

	requiredText = "This field is required."
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Prefer the form name, then the JSON name, so messages line up with the
	// inputs a visitor filled in.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = validate.RegisterValidation(slugTag, func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	RegisterCustomTranslation(slugTag, slugText)
	RegisterCustomTranslation(notBlankTag, notBlankText)
	RegisterCustomTranslation("required", requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates s and converts failures into an *apperrors.ValidationError
// keyed by field name.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return FromValidator(verrs)
}

// FromValidator translates validator errors into a field->message map.
func FromValidator(verrs validator.ValidationErrors) *apperrors.ValidationError {
	out := apperrors.NewValidationError(nil)
	for _, fe := range verrs {
		out.Add(fe.Field(), fe.Translate(translator))
	}
	return out
}
