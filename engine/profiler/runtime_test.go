package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadRuntime(t *testing.T) {
	r := ReadRuntime()
	assert.Positive(t, r.Goroutines)
	assert.Positive(t, r.CPUs)
	assert.Positive(t, r.Alloc)
}

func TestStartIsAlwaysCallable(t *testing.T) {
	end := Start("scope")
	assert.NotPanics(t, end)
}
