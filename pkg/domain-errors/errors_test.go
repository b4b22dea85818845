package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("matches outer code", func(t *testing.T) {
		err := New(CodeNotFound, "template not found")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeConflict))
	})

	t.Run("matches wrapped code through fmt wrapping", func(t *testing.T) {
		inner := New(CodeValidation, "name is required")
		err := fmt.Errorf("create: %w", Wrap(inner, CodeBadRequest, "invalid request"))
		assert.True(t, HasCode(err, CodeBadRequest))
		assert.True(t, HasCode(err, CodeValidation))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestErrorString(t *testing.T) {
	err := Wrap(errors.New("disk"), CodeInternal, "failed to load")
	assert.Equal(t, "failed to load: disk", err.Error())
	assert.Equal(t, "failed to load", MessageOf(err))
}
