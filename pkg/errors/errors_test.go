package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigMissing, "source path does not exist")
	assert.Equal(t, ErrConfigMissing, err.Code)
	assert.Equal(t, "[CONFIG_MISSING] source path does not exist", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrDisplacedMove, "failed to move occupant")
	require.NotNil(t, err)
	assert.Equal(t, "[DISPLACED_MOVE_FAILED] failed to move occupant: permission denied", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrBlockEdit, "should be nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrBlockEdit, "atomic replace of %s failed", "hyprland.conf")
	assert.True(t, IsErrorCode(err, ErrBlockEdit))
	assert.False(t, IsErrorCode(err, ErrConfigMissing))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrBlockEdit))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrExternalTool, GetErrorCode(New(ErrExternalTool, "hyprctl not found")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain error")))
}

func TestErrorsIs(t *testing.T) {
	err := New(ErrMarkerWrite, "cannot write marker")
	target := New(ErrMarkerWrite, "different message, same code")
	assert.True(t, errors.Is(err, target))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSymlinkCreate, "symlink failed").
		WithDetail("source", "/repo/configs/hypr").
		WithDetail("destination", "/home/u/.config/hypr")
	assert.Equal(t, "/repo/configs/hypr", err.Details["source"])
	assert.Equal(t, "/home/u/.config/hypr", err.Details["destination"])
}
