package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingBenchmarkService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingBenchmarkService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingBenchmarkService.Error(), "benchmark service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
