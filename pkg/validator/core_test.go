package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.MinLen("name", "Ann", 2),
			validator.MaxLen("name", "Ann", 50),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.MinLen("name", "A", 2),
			validator.EmailShape("email", "nope"),
			validator.MaxLen("name", "A", 50),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name", "email"}, verrs.Fields())
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("city"))
	})

	t.Run("custom message", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.MinLen("name", "A", 2).WithMessage("Name must be at least 2 characters"),
		)
		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"Name must be at least 2 characters"}, verrs.Get("name"))
		assert.Equal(t, "validation.min_length", verrs[0].TranslationKey)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	inner := validator.Apply(validator.MinLen("city", " ", 2))
	wrapped := fmt.Errorf("step 2: %w", inner)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, map[string][]string{"city": {"must be at least 2 characters long"}}, validator.ExtractValidationErrors(wrapped).Map())
}

func TestValidationErrorsError(t *testing.T) {
	t.Parallel()

	var verrs validator.ValidationErrors
	assert.Equal(t, "validation failed", verrs.Error())
	assert.True(t, verrs.IsEmpty())

	verrs.Add(validator.ValidationError{Field: "zipcode", Message: "too short"})
	assert.Equal(t, "validation failed: zipcode: too short", verrs.Error())
}
