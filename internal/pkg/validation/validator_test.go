package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
)

type contactForm struct {
	Name    string `form:"name" validate:"notblank,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Slug    string `json:"slug" validate:"omitempty,slug"`
}

func TestStruct_FieldMessages(t *testing.T) {
	err := Struct(contactForm{Name: "  ", Email: "not-an-email", Slug: "Bad Slug"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "This field is required.", ve.Fields["name"])
	assert.Equal(t, "This field is required.", ve.Fields["subject"])
	assert.Contains(t, ve.Fields["email"], "valid email")
	assert.Contains(t, ve.Fields["slug"], "lowercase")
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(contactForm{Name: "Ayesha", Email: "ayesha@example.com", Subject: "Admissions", Slug: "admissions-2025"})
	assert.NoError(t, err)
}
