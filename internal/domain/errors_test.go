package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAPIError(t *testing.T) {
	err := NewOpenAPIError("bad spec", nil)

	assert.Equal(t, "bad spec", err.Error())
	assert.NotNil(t, err.Data)
	assert.Empty(t, err.Data)

	withData := NewOpenAPIError("bad spec", map[string]any{"line": 3})
	assert.Equal(t, 3, withData.Data["line"])
}

func TestOpenAPIErrorMatching(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewOpenAPIError("missing version", nil))

	assert.True(t, errors.Is(wrapped, ErrOpenAPI))
	assert.False(t, errors.Is(errors.New("other"), ErrOpenAPI))

	var specErr *OpenAPIError
	require.True(t, errors.As(wrapped, &specErr))
	assert.Equal(t, "missing version", specErr.Message)
}
