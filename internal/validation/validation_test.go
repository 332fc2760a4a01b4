package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name   string `json:"customerName" validate:"required,min=2"`
	Email  string `json:"customerEmail" validate:"required,email"`
	Rating string `json:"rating" validate:"required,rating"`
	Level  string `json:"complexity" validate:"required,oneof=basic standard premium"`
}

func validSample() sampleForm {
	return sampleForm{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Rating: "3",
		Level:  "standard",
	}
}

func TestValidateOK(t *testing.T) {
	assert.Nil(t, Validate(validSample()))
}

func TestValidateEnumeratesEveryViolation(t *testing.T) {
	errs := Validate(sampleForm{})
	require.Len(t, errs, 4)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"customerName", "customerEmail", "rating", "complexity"}, fields)
}

func TestValidateRating(t *testing.T) {
	for _, bad := range []string{"0", "6", "abc", "2.5", "-1"} {
		form := validSample()
		form.Rating = bad
		errs := Validate(form)
		require.Len(t, errs, 1, "rating %q should fail", bad)
		assert.Equal(t, "rating", errs[0].Field)
	}

	for _, good := range []string{"1", "3", "5"} {
		form := validSample()
		form.Rating = good
		assert.Nil(t, Validate(form), "rating %q should pass", good)
	}
}

func TestValidateEmail(t *testing.T) {
	form := validSample()
	form.Email = "not-an-email"
	errs := Validate(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "customerEmail", errs[0].Field)
	assert.Equal(t, "must be a valid email address", errs[0].Message)
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	form := validSample()
	form.Name = "J"
	errs := Validate(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "customerName", errs[0].Field)
	assert.Equal(t, "must be at least 2 characters", errs[0].Message)
}
