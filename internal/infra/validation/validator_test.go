package validation

import (
	"strings"
	"testing"

	domainerrors "planner/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name     string `json:"name" validate:"required,utf16min=6,utf16max=255"`
	Email    string `json:"email" validate:"required,email,utf16min=6,utf16max=255"`
	Password string `json:"password" validate:"required,utf16min=6,utf16max=20"`
	Kind     string `json:"kind,omitempty" validate:"omitempty,oneof=None Daily"`
}

func TestValidator_Check(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		form      signupForm
		wantOK    bool
		wantFirst string
		wantCount int
	}{
		{
			name:   "valid",
			form:   signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: "12345678"},
			wantOK: true,
		},
		{
			name:      "everything missing reports name first",
			form:      signupForm{},
			wantFirst: `"name" is required`,
			wantCount: 3,
		},
		{
			name:      "short name",
			form:      signupForm{Name: "Jul", Email: "julia@gmail.com", Password: "12345678"},
			wantFirst: `"name" length must be at least 6 characters long`,
			wantCount: 1,
		},
		{
			name:      "bad email",
			form:      signupForm{Name: "Julia Lalala", Email: "not-an-email", Password: "12345678"},
			wantFirst: `"email" must be a valid email`,
			wantCount: 1,
		},
		{
			name:      "long password",
			form:      signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: "123456789012345678901"},
			wantFirst: `"password" length must be less than or equal to 20 characters long`,
			wantCount: 1,
		},
		{
			name:      "astral characters count twice",
			form:      signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: strings.Repeat("😀", 11)},
			wantFirst: `"password" length must be less than or equal to 20 characters long`,
			wantCount: 1,
		},
		{
			name:   "ten astral characters fit",
			form:   signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: strings.Repeat("😀", 10)},
			wantOK: true,
		},
		{
			name:   "accented password counts one unit per letter",
			form:   signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: strings.Repeat("é", 20)},
			wantOK: true,
		},
		{
			name:      "enum",
			form:      signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: "12345678", Kind: "Yearly"},
			wantFirst: `"kind" must be one of [None, Daily]`,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Check(tt.form)
			assert.Equal(t, tt.wantOK, res.OK())
			assert.Equal(t, tt.wantFirst, res.First())
			assert.Len(t, res.Violations, tt.wantCount)
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: "12345678"}))

	err := v.Validate(&signupForm{Name: "Julia Lalala", Email: "julia@gmail.com", Password: "123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, `"password" length must be at least 6 characters long`, appErr.Message())
}
