package models

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FM1201/aijohub/cli/api"
)

func TestListFetchAll(t *testing.T) {
	t.Run("Should transition loading to loaded", func(t *testing.T) {
		suppliers := []api.Supplier{{ID: "1", Nama: "Kain Jaya"}}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(suppliers)
		}))
		defer server.Close()

		m := NewListModel(context.Background(), clientFor(server.URL), "tok")
		cmd := m.FetchAll()
		assert.True(t, m.Loading())

		m.Update(resultMsg(t, cmd))
		assert.False(t, m.Loading())
		assert.Equal(t, suppliers, m.Suppliers())
	})

	t.Run("Should transition loading to failed on backend error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
		}))
		defer server.Close()

		m := NewListModel(context.Background(), clientFor(server.URL), "tok")
		cmd := m.FetchAll()
		m.Update(resultMsg(t, cmd))

		assert.False(t, m.Loading())
		assert.Equal(t, listFailed, m.phase)
		assert.Contains(t, m.errText, "boom")
	})
}

func TestListStaleResponses(t *testing.T) {
	// The backend echoes the nama filter as the single result, so each
	// response identifies which request produced it.
	echoServer := func() *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]api.Supplier{{ID: "1", Nama: r.URL.Query().Get("nama")}})
		}))
	}

	t.Run("Should only apply the last-initiated search regardless of arrival order", func(t *testing.T) {
		server := echoServer()
		defer server.Close()

		m := NewListModel(context.Background(), clientFor(server.URL), "tok")
		first := resultMsg(t, m.Search(api.SearchFilter{Nama: "a"}))
		second := resultMsg(t, m.Search(api.SearchFilter{Nama: "b"}))

		// Late arrival: the superseding response lands first.
		m.Update(second)
		m.Update(first)

		require.Len(t, m.Suppliers(), 1)
		assert.Equal(t, "b", m.Suppliers()[0].Nama)
	})

	t.Run("Should stay loading when only a superseded response has arrived", func(t *testing.T) {
		server := echoServer()
		defer server.Close()

		m := NewListModel(context.Background(), clientFor(server.URL), "tok")
		first := resultMsg(t, m.Search(api.SearchFilter{Nama: "a"}))
		second := resultMsg(t, m.Search(api.SearchFilter{Nama: "b"}))

		m.Update(first)
		assert.True(t, m.Loading(), "stale result must not resolve the newer request")

		m.Update(second)
		assert.False(t, m.Loading())
		assert.Equal(t, "b", m.Suppliers()[0].Nama)
	})

	t.Run("Should discard a stale failure", func(t *testing.T) {
		okServer := echoServer()
		defer okServer.Close()
		badServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer badServer.Close()

		m := NewListModel(context.Background(), clientFor(badServer.URL), "tok")
		failed := resultMsg(t, m.Search(api.SearchFilter{Nama: "a"}))

		m.client = clientFor(okServer.URL)
		ok := resultMsg(t, m.Search(api.SearchFilter{Nama: "b"}))

		m.Update(ok)
		m.Update(failed)

		assert.Equal(t, listLoaded, m.phase)
		assert.Empty(t, m.errText)
	})
}

func TestListRefresh(t *testing.T) {
	t.Run("Should re-run the active search filter", func(t *testing.T) {
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path+"?nama="+r.URL.Query().Get("nama"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]api.Supplier{})
		}))
		defer server.Close()

		m := NewListModel(context.Background(), clientFor(server.URL), "tok")
		m.Update(resultMsg(t, m.Search(api.SearchFilter{Nama: "jaya"})))
		m.Update(resultMsg(t, m.Refresh()))

		require.Len(t, paths, 2)
		assert.Equal(t, "/api/supplier-kain/search?nama=jaya", paths[0])
		assert.Equal(t, paths[0], paths[1], "refresh must preserve the filter")
	})

	t.Run("Should fetch everything after reset", func(t *testing.T) {
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]api.Supplier{})
		}))
		defer server.Close()

		m := NewListModel(context.Background(), clientFor(server.URL), "tok")
		m.Update(resultMsg(t, m.Search(api.SearchFilter{Nama: "jaya"})))
		m.Update(resultMsg(t, m.Reset()))
		m.Update(resultMsg(t, m.Refresh()))

		require.Len(t, paths, 3)
		assert.Equal(t, "/api/supplier-kain/search", paths[0])
		assert.Equal(t, "/api/supplier-kain", paths[1])
		assert.Equal(t, "/api/supplier-kain", paths[2])
	})
}
