package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

func TestMemoryAtomicity(t *testing.T) {
	s := NewMemory()

	require.NoError(t, s.Set("tok-1", "u-1", domain.RoleHospital))
	assert.Equal(t, "tok-1", s.Token())
	assert.Equal(t, "u-1", s.UserID())
	assert.Equal(t, domain.RoleHospital, s.Role())
	assert.True(t, s.IsLoggedIn())

	require.NoError(t, s.Clear())
	assert.Equal(t, "", s.Token())
	assert.Equal(t, "", s.UserID())
	assert.False(t, s.IsLoggedIn())
}

func TestRoleFallback(t *testing.T) {
	s := NewMemory()
	// No session: role falls back to donor, but IsLoggedIn stays strict.
	assert.Equal(t, domain.RoleDonor, s.Role())
	assert.False(t, s.IsLoggedIn())
}

func TestMemoryConcurrentAccess(t *testing.T) {
	s := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Set("tok", "u", domain.RoleDonor)
		}()
		go func() {
			defer wg.Done()
			// Either fully set or fully cleared, never torn.
			if s.IsLoggedIn() {
				assert.Equal(t, "u", s.UserID())
			}
			_ = s.Clear()
		}()
	}
	wg.Wait()
}

func TestFilePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewFile(path)
	require.NoError(t, err)
	assert.False(t, s.IsLoggedIn())

	require.NoError(t, s.Set("tok-2", "u-2", domain.RoleAdmin))

	// A fresh store reading the same file sees the full session.
	reloaded, err := NewFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", reloaded.Token())
	assert.Equal(t, "u-2", reloaded.UserID())
	assert.Equal(t, domain.RoleAdmin, reloaded.Role())

	require.NoError(t, s.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	cleared, err := NewFile(path)
	require.NoError(t, err)
	assert.False(t, cleared.IsLoggedIn())
	assert.Equal(t, domain.RoleDonor, cleared.Role())
}

func TestFileCorruptTreatedAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewFile(path)
	require.NoError(t, err)
	assert.False(t, s.IsLoggedIn())
}

func TestClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-3",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test_secret"))
	require.NoError(t, err)

	claims, err := Claims(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-3", claims["sub"])

	got, ok := ExpiresAt(signed)
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestExpiresAtOpaqueToken(t *testing.T) {
	_, ok := ExpiresAt("not-a-jwt")
	assert.False(t, ok)
}
