package config

import (
	"runtime"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestWorkerCount(t *testing.T) {
	assert.Equal(t, 3, WorkerCount(3))
	assert.Equal(t, runtime.GOMAXPROCS(0), WorkerCount(0))
	assert.Equal(t, runtime.GOMAXPROCS(0), WorkerCount(-1))
}
