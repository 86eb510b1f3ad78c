package mem_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	mem "roamio/pkg/memcache"
)

// TestRevokedTokens_roundTrip revokes a token and checks membership.
func TestRevokedTokens_roundTrip(t *testing.T) {
	store := mem.NewRevokedTokens()

	require.False(t, store.IsRevoked("tok"))

	store.Revoke("tok", time.Minute)
	require.True(t, store.IsRevoked("tok"))
	require.False(t, store.IsRevoked("other"))
}

// TestRevokedTokens_expiry drops entries once their TTL passes.
func TestRevokedTokens_expiry(t *testing.T) {
	store := mem.NewRevokedTokens()

	store.Revoke("tok", 10*time.Millisecond)
	require.True(t, store.IsRevoked("tok"))

	time.Sleep(20 * time.Millisecond)
	require.False(t, store.IsRevoked("tok"))
}

// TestRevokedTokens_nonPositiveTTL ignores tokens that are already
// past their expiry when revoked.
func TestRevokedTokens_nonPositiveTTL(t *testing.T) {
	store := mem.NewRevokedTokens()

	store.Revoke("tok", 0)
	require.False(t, store.IsRevoked("tok"))

	store.Revoke("tok", -time.Minute)
	require.False(t, store.IsRevoked("tok"))
}
