//go:build unit

package user_test

import (
	"strings"
	"testing"

	"parkspot/internal/domain/user"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("phone validation", func(t *testing.T) {
		cases := []struct {
			name  string
			phone string
			errIs error
		}{
			{name: "ten digits pass", phone: "9876543210"},
			{name: "surrounding spaces are trimmed", phone: " 9876543210 "},
			{name: "nine digits fail", phone: "987654321", errIs: user.ErrInvalidPhone},
			{name: "eleven digits fail", phone: "98765432100", errIs: user.ErrInvalidPhone},
			{name: "letters fail", phone: "98765abcde", errIs: user.ErrInvalidPhone},
			{name: "empty fails", phone: "", errIs: user.ErrInvalidPhone},
			{name: "plus prefix fails", phone: "+919876543", errIs: user.ErrInvalidPhone},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewUserBuilder().WithPhone(c.phone).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					assert.Equal(t, strings.TrimSpace(c.phone), actual.Phone())
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("name length is capped", func(t *testing.T) {
		_, err := builder.NewUserBuilder().WithName(strings.Repeat("x", 65)).BuildDomain()
		require.ErrorIs(t, err, user.ErrNameTooLong)

		u, err := builder.NewUserBuilder().WithName(strings.Repeat("x", 64)).BuildDomain()
		require.NoError(t, err)
		assert.Len(t, u.Name(), 64)
	})

	t.Run("admin flag is carried", func(t *testing.T) {
		u, err := builder.NewUserBuilder().AsAdmin().BuildDomain()
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})
}

func TestValidPhone(t *testing.T) {
	assert.True(t, user.ValidPhone("0123456789"))
	assert.False(t, user.ValidPhone("12345"))
}
