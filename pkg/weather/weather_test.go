package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const payload = `{
	"main": {"temp": 18.4},
	"weather": [{"main": "Clouds", "icon": "03d"}],
	"name": "Seattle"
}`

func testClient(srv *httptest.Server) *Client {
	c := New("test-key")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()
	return c
}

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("appid") != "test-key" {
			t.Errorf("missing api key, got %q", q.Get("appid"))
		}
		if q.Get("units") != "metric" {
			t.Errorf("expected metric units, got %q", q.Get("units"))
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	rep, err := testClient(srv).Current(context.Background(), 47.6062, -122.3321)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Temp != 18.4 || rep.Description != "Clouds" || rep.Icon != "03d" || rep.Location != "Seattle" {
		t.Fatalf("unexpected report: %+v", rep)
	}

	snap := rep.Snapshot()
	if snap.Temp != 18.4 || snap.Description != "Clouds" || snap.Icon != "03d" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestCurrentNoCredential(t *testing.T) {
	c := New("")
	_, err := c.Current(context.Background(), 0, 0)

	var u *Unavailable
	if !errors.As(err, &u) {
		t.Fatalf("expected Unavailable, got %T: %v", err, err)
	}
	if u.Reason != NoCredential {
		t.Fatalf("expected NoCredential, got %s", u.Reason)
	}
}

func TestCurrentUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv).Current(context.Background(), 0, 0)

	var u *Unavailable
	if !errors.As(err, &u) {
		t.Fatalf("expected Unavailable, got %T: %v", err, err)
	}
	if u.Reason != PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %s", u.Reason)
	}
}

func TestCurrentBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv).Current(context.Background(), 0, 0)

	var u *Unavailable
	if !errors.As(err, &u) {
		t.Fatalf("expected Unavailable, got %T: %v", err, err)
	}
	if u.Reason != BadStatus {
		t.Fatalf("expected BadStatus, got %s", u.Reason)
	}
}

func TestCurrentNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := testClient(srv)
	srv.Close() // connection refused from here on

	_, err := c.Current(context.Background(), 0, 0)

	var u *Unavailable
	if !errors.As(err, &u) {
		t.Fatalf("expected Unavailable, got %T: %v", err, err)
	}
	if u.Reason != Network {
		t.Fatalf("expected Network, got %s", u.Reason)
	}
}

func TestCurrentEmptyConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"main":{"temp":1},"weather":[],"name":"Nowhere"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Current(context.Background(), 0, 0)

	var u *Unavailable
	if !errors.As(err, &u) {
		t.Fatalf("expected Unavailable, got %T: %v", err, err)
	}
	if u.Reason != BadStatus {
		t.Fatalf("expected BadStatus, got %s", u.Reason)
	}
}
