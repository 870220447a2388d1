package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/pkg/config"
)

func clientFor(url string) *api.Client {
	return api.NewClient(&config.Config{
		API: config.APIConfig{BaseURL: url, Timeout: 5 * time.Second},
	})
}

func TestRestore(t *testing.T) {
	t.Run("Should return nil when nothing persisted", func(t *testing.T) {
		store := NewStore(t.TempDir())
		sess, err := store.Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("Should round-trip a saved session", func(t *testing.T) {
		store := NewStore(t.TempDir())
		require.NoError(t, store.save(&Session{Token: "tok", Username: "admin"}))

		sess, err := store.Restore()
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "tok", sess.Token)
		assert.Equal(t, "admin", sess.Username)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Should persist session on successful login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-abc"})
		}))
		defer server.Close()

		store := NewStore(t.TempDir())
		sess, err := store.Login(context.Background(), clientFor(server.URL), "admin", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-abc", sess.Token)
		assert.Equal(t, "admin", sess.Username)

		restored, err := store.Restore()
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, *sess, *restored)
	})

	t.Run("Should persist nothing on failed login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
		}))
		defer server.Close()

		store := NewStore(t.TempDir())
		sess, err := store.Login(context.Background(), clientFor(server.URL), "admin", "nope")
		require.Error(t, err)
		assert.Nil(t, sess)
		assert.ErrorIs(t, err, api.ErrAuth)

		restored, err := store.Restore()
		require.NoError(t, err)
		assert.Nil(t, restored)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Should clear the persisted session", func(t *testing.T) {
		store := NewStore(t.TempDir())
		require.NoError(t, store.save(&Session{Token: "tok", Username: "admin"}))

		require.NoError(t, store.Logout())

		sess, err := store.Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("Should tolerate logout without a session", func(t *testing.T) {
		store := NewStore(t.TempDir())
		assert.NoError(t, store.Logout())
	})
}
