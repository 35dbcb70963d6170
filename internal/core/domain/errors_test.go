package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrUnknownStrategy", ErrUnknownStrategy},
		{"ErrStrategyMismatch", ErrStrategyMismatch},
		{"ErrInvalidSetting", ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrUnknownStrategy, ErrNotFound))
	assert.False(t, errors.Is(ErrInvalidSetting, ErrInvalidInput))
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("strategy %q: %w", "fast", ErrUnknownStrategy)
	assert.True(t, errors.Is(wrapped, ErrUnknownStrategy))
	assert.Contains(t, wrapped.Error(), "unknown counting strategy")
}
