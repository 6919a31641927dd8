//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("validation failed")

	t.Run("mark matches with errors.Is", func(t *testing.T) {
		cause := errs.New("latitude out of range")

		marked := errs.Mark(cause, sentinel)

		require.ErrorIs(t, marked, sentinel)
		require.ErrorIs(t, marked, cause)
	})

	t.Run("cause stays reachable for kind checks", func(t *testing.T) {
		cause := infra.NewRepoErr(infra.KindNotFound, "slot not found")

		marked := errs.Mark(cause, sentinel)

		assert.True(t, infra.IsKind(marked, infra.KindNotFound))
		require.ErrorIs(t, marked, sentinel)
	})

	t.Run("nil cause returns the mark itself", func(t *testing.T) {
		marked := errs.Mark(nil, sentinel)

		require.ErrorIs(t, marked, sentinel)
		assert.Equal(t, sentinel.Error(), marked.Error())
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		require.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("keeps the cause in the chain", func(t *testing.T) {
		cause := errors.New("boom")

		wrapped := errs.Wrap(cause, "while saving")

		require.ErrorIs(t, wrapped, cause)
		assert.Contains(t, wrapped.Error(), "while saving")
	})
}
