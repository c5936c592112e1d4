package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTableToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateTableToken("table-1")
	require.NoError(t, err)

	t.Run("valid for its table", func(t *testing.T) {
		claims, err := issuer.ValidateTableToken(token, "table-1")
		require.NoError(t, err)
		require.Equal(t, "table-1", claims.TableID)
		require.NotEmpty(t, claims.ID)
	})

	t.Run("rejected for another table", func(t *testing.T) {
		_, err := issuer.ValidateTableToken(token, "table-2")
		require.ErrorIs(t, err, ErrTableMismatch)
	})

	t.Run("rejected with another secret", func(t *testing.T) {
		other := NewTokenIssuer("other", time.Hour)
		_, err := other.ValidateTableToken(token, "table-1")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejected when garbled", func(t *testing.T) {
		_, err := issuer.ValidateTableToken("abc.def.ghi", "table-1")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejected once expired", func(t *testing.T) {
		later := NewTokenIssuer("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.ValidateTableToken(token, "table-1")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokensAreUnique(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	a, err := issuer.GenerateTableToken("table-1")
	require.NoError(t, err)
	b, err := issuer.GenerateTableToken("table-1")
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	claimsA, err := issuer.ValidateTableToken(a, "table-1")
	require.NoError(t, err)
	claimsB, err := issuer.ValidateTableToken(b, "table-1")
	require.NoError(t, err)
	require.NotEqual(t, claimsA.ID, claimsB.ID)
}
