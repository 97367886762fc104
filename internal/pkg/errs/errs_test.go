//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"staybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	cause := errs.New("tax rate out of range")

	t.Run("mark is visible to stdlib errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrInvalidFeeConfig)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidFeeConfig)
	})

	t.Run("the original cause stays in the chain", func(t *testing.T) {
		err := errs.Mark(errs.Wrap(cause, "fee schedule"), errs.ErrInvalidFeeConfig)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "fee schedule")
	})

	t.Run("nil err collapses to the sentinel", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrDatesUnavailable)

		assert.True(t, errors.Is(err, errs.ErrDatesUnavailable))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
		assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
	})

	t.Run("wrapped errors carry a stack for logging", func(t *testing.T) {
		err := errs.Wrap(errs.New("boom"), "context")

		lines := errs.ExtractStackLines(err, 3)
		require.NotEmpty(t, lines)
		assert.Len(t, lines, 3)
		assert.Contains(t, lines[0], "context")
	})
}
