package webclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"harvesthub/internal/apperr"
	"harvesthub/internal/webclient"
)

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workshops" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":3,"title":"Composting 101","price":"8000","max_participants":20,"current_participants":2}]}`))
	}))
	defer srv.Close()

	c := webclient.NewClient(srv.URL)
	ws, err := c.Workshops(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 1 || ws[0].Title != "Composting 101" {
		t.Fatalf("decoded: %+v", ws)
	}
	if ws[0].AvailableSpots() != 18 {
		t.Fatalf("available spots = %d, want 18", ws[0].AvailableSpots())
	}
}

func TestClientMapsStatusCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/workshops/404":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":true,"message":"Workshop not found"}`))
		case "/auth/me":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":true,"message":"Invalid or expired token"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":true,"message":"Internal server error"}`))
		}
	}))
	defer srv.Close()

	c := webclient.NewClient(srv.URL)
	ctx := context.Background()

	_, err := c.Workshop(ctx, 404)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("404 mapped to %v", apperr.KindOf(err))
	}
	if err.Error() != "Workshop not found" {
		t.Fatalf("message lost: %q", err.Error())
	}

	_, err = c.Me(ctx)
	if apperr.KindOf(err) != apperr.KindUnauthenticated {
		t.Fatalf("401 mapped to %v", apperr.KindOf(err))
	}

	err = c.Health(ctx)
	if apperr.KindOf(err) != apperr.KindPersistence {
		t.Fatalf("500 mapped to %v", apperr.KindOf(err))
	}
}

func TestClientTimeoutAndNetworkKinds(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	c := webclient.NewClient(slow.URL)
	c.HTTP.Timeout = 20 * time.Millisecond
	err := c.Health(context.Background())
	if apperr.KindOf(err) != apperr.KindTimeout {
		t.Fatalf("timeout mapped to %v", apperr.KindOf(err))
	}

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	c2 := webclient.NewClient(dead.URL)
	err = c2.Health(context.Background())
	k := apperr.KindOf(err)
	if k != apperr.KindNetwork && k != apperr.KindTimeout {
		t.Fatalf("connection refused mapped to %v", k)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":2,"username":"ayodya"}}`))
	}))
	defer srv.Close()

	c := webclient.NewClient(srv.URL).WithToken("tok-123")
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer tok-123" {
		t.Fatalf("authorization header = %q", got)
	}
}
