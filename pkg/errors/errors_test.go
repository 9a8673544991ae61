// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/backup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "copy_error",
			code:    errors.ErrCopy,
			message: "failed to copy /src/a.txt",
			wantStr: "[COPY] failed to copy /src/a.txt",
		},
		{
			name:    "config_error",
			code:    errors.ErrConfigInvalid,
			message: "missing key paths",
			wantStr: "[CONFIG_INVALID] missing key paths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrClean, "cannot remove %s", "/dst/old")
	assert.Equal(t, "cannot remove /dst/old", err.Message)
	assert.Equal(t, errors.ErrClean, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrCopy, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrCopy, "ignored %d", 1))
	})

	t.Run("wrapped_error_is_reachable", func(t *testing.T) {
		base := stderrors.New("permission denied")
		err := errors.Wrapf(base, errors.ErrCopy, "failed to copy %s", "a.txt")

		assert.Equal(t, "[COPY] failed to copy a.txt: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, base))
		assert.Equal(t, base, stderrors.Unwrap(err))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("run aborted: %w", errors.New(errors.ErrPathMapping, "outside root"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrPathMapping, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrCopy, "")))
}

func TestErrorCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrClean, "failed").WithDetail("path", "/dst/old")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrClean))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrCopy))
	assert.Equal(t, errors.ErrClean, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	details := errors.GetErrorDetails(wrapped)
	require.NotNil(t, details)
	assert.Equal(t, "/dst/old", details["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIsConfigError(t *testing.T) {
	for _, code := range []errors.ErrorCode{errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrConfigInvalid} {
		assert.True(t, errors.IsConfigError(errors.New(code, "x")), code)
	}
	assert.False(t, errors.IsConfigError(errors.New(errors.ErrCopy, "x")))
	assert.False(t, errors.IsConfigError(nil))
}
