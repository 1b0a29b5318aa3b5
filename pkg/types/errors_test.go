package types

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSystemError 测试系统调用错误
func TestSystemError(t *testing.T) {
	err := NewSystemError("read", syscall.EBADF, "descriptor not open")

	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "descriptor not open")
	assert.True(t, errors.Is(err, syscall.EBADF))
	assert.True(t, IsSystemError(err))
	assert.False(t, IsSystemError(errors.New("plain")))
}
