//go:build unit

package passcode_test

import (
	"testing"

	"parkspot/internal/pkg/passcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	for range 20 {
		code, err := passcode.Generate()
		require.NoError(t, err)
		require.Len(t, code, passcode.CodeLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestHashAndCompare(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		hashed, err := passcode.Hash("123456")
		require.NoError(t, err)
		require.NotEqual(t, "123456", hashed)

		require.NoError(t, passcode.Compare(hashed, "123456"))
	})

	t.Run("mismatch", func(t *testing.T) {
		hashed, err := passcode.Hash("123456")
		require.NoError(t, err)

		require.ErrorIs(t, passcode.Compare(hashed, "654321"), passcode.ErrCodeMismatch)
	})

	t.Run("empty inputs rejected", func(t *testing.T) {
		_, err := passcode.Hash("")
		require.ErrorIs(t, err, passcode.ErrInvalidCode)

		require.ErrorIs(t, passcode.Compare("", "123456"), passcode.ErrInvalidCode)
		require.ErrorIs(t, passcode.Compare("hash", ""), passcode.ErrInvalidCode)
	})
}
