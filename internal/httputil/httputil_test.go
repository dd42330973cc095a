package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMethod(t *testing.T) {
	assert.Equal(t, "get", NormalizeMethod("GET"))
	assert.Equal(t, "patch", NormalizeMethod("Patch"))
	assert.Equal(t, "query", NormalizeMethod("QUERY"))
}

func TestIsKnownMethod(t *testing.T) {
	tests := []struct {
		method   string
		expected bool
	}{
		{"GET", true},
		{"get", true},
		{"Delete", true},
		{"TRACE", true},
		{"CONNECT", false},
		{"QUERY", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsKnownMethod(tt.method))
		})
	}
}
