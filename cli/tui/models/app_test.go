package models

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/session"
)

func TestAppLogin(t *testing.T) {
	t.Run("Should persist session and show dashboard on valid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/api/auth/login" {
				json.NewEncoder(w).Encode(map[string]string{"token": "tok-xyz"})
				return
			}
			json.NewEncoder(w).Encode([]api.Supplier{})
		}))
		defer server.Close()

		store := session.NewStore(t.TempDir())
		app := NewAppModel(context.Background(), clientFor(server.URL), store)
		require.False(t, app.LoggedIn())

		app.login.username = "admin"
		app.login.password = "secret"
		msg := resultMsg(t, app.login.submit())
		_, ok := msg.(loggedInMsg)
		require.True(t, ok)

		app.Update(msg)
		assert.True(t, app.LoggedIn())

		sess, err := store.Restore()
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "tok-xyz", sess.Token)
		assert.Equal(t, "admin", sess.Username)
	})

	t.Run("Should show message and persist nothing on invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "wrong username or password"})
		}))
		defer server.Close()

		store := session.NewStore(t.TempDir())
		app := NewAppModel(context.Background(), clientFor(server.URL), store)

		app.login.username = "admin"
		app.login.password = "nope"
		msg := resultMsg(t, app.login.submit())
		app.Update(msg)

		assert.False(t, app.LoggedIn())
		assert.Contains(t, app.login.errText, "wrong username or password")

		sess, err := store.Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("Should restore a persisted session straight to the dashboard", func(t *testing.T) {
		dir := t.TempDir()
		store := session.NewStore(dir)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
		}))
		defer server.Close()
		_, err := store.Login(context.Background(), clientFor(server.URL), "admin", "pw")
		require.NoError(t, err)

		app := NewAppModel(context.Background(), clientFor(server.URL), store)
		assert.True(t, app.LoggedIn())
	})
}

func TestAppLogout(t *testing.T) {
	t.Run("Should clear session and return to login view", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
		}))
		defer server.Close()

		store := session.NewStore(t.TempDir())
		_, err := store.Login(context.Background(), clientFor(server.URL), "admin", "pw")
		require.NoError(t, err)

		app := NewAppModel(context.Background(), clientFor(server.URL), store)
		require.True(t, app.LoggedIn())

		msg := resultMsg(t, app.dash.logout())
		_, ok := msg.(loggedOutMsg)
		require.True(t, ok)

		app.Update(msg)
		assert.False(t, app.LoggedIn())

		sess, err := store.Restore()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})
}

func TestDashboardSaveRefresh(t *testing.T) {
	newDashboard := func(t *testing.T, url string) *DashboardModel {
		t.Helper()
		store := session.NewStore(t.TempDir())
		sess := &session.Session{Token: "tok", Username: "admin"}
		return NewDashboardModel(context.Background(), clientFor(url), store, sess)
	}

	t.Run("Should include the created record after save triggers a refresh", func(t *testing.T) {
		var mu sync.Mutex
		suppliers := []api.Supplier{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			if r.Method == http.MethodPost {
				var s api.Supplier
				json.NewDecoder(r.Body).Decode(&s)
				s.ID = "42"
				suppliers = append(suppliers, s)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(s)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(suppliers)
		}))
		defer server.Close()

		dash := newDashboard(t, server.URL)
		dash.list.Update(resultMsg(t, dash.Init()))

		dash.form.OpenAdd()
		for field, value := range map[string]string{
			"nama": "Baru", "alamat": "Jakarta", "telepon": "0899",
			"email": "baru@example.com", "npwp": "09.111",
		} {
			require.NoError(t, dash.form.SetField(field, value))
		}
		savedMsg := resultMsg(t, dash.form.Submit())

		refresh := dash.Update(savedMsg)
		require.NotNil(t, refresh, "save success must trigger a list refresh")
		assert.False(t, dash.form.IsOpen())

		dash.Update(resultMsg(t, refresh))
		ids := make([]string, 0, len(dash.list.Suppliers()))
		for _, s := range dash.list.Suppliers() {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, "42")
	})

	t.Run("Should keep the active search filter across a save refresh", func(t *testing.T) {
		var mu sync.Mutex
		var searches []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			if r.URL.Path == "/api/supplier-kain/search" {
				searches = append(searches, r.URL.Query().Get("nama"))
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]api.Supplier{})
		}))
		defer server.Close()

		dash := newDashboard(t, server.URL)
		dash.Update(resultMsg(t, dash.list.Search(api.SearchFilter{Nama: "jaya"})))

		refresh := dash.Update(supplierSavedMsg{supplier: api.Supplier{ID: "1"}})
		require.NotNil(t, refresh)
		dash.Update(resultMsg(t, refresh))

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, searches, 2)
		assert.Equal(t, "jaya", searches[1], "refresh after save must re-run the active search")
	})

	t.Run("Should quit on q when nothing is focused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]api.Supplier{})
		}))
		defer server.Close()

		dash := newDashboard(t, server.URL)
		cmd := dash.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}
