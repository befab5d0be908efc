package grading

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPFetcher_MIMEFromContentType(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}))
	defer srv.Close()

	part, err := NewHTTPFetcher(srv.Client()).Fetch(context.Background(), srv.URL+"/a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.MIMEType != "image/png" {
		t.Errorf("MIME = %q, want image/png", part.MIMEType)
	}
	if !bytes.Equal(part.Data, png) {
		t.Error("image bytes did not round-trip")
	}
}

func TestHTTPFetcher_NonImageContentTypeDefaultsToJPEG(t *testing.T) {
	tests := []string{"text/html; charset=utf-8", "application/octet-stream", ""}

	for _, ct := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ct != "" {
				w.Header().Set("Content-Type", ct)
			}
			w.Write([]byte{0xFF, 0xD8, 0x01, 0x02})
		}))

		part, err := NewHTTPFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
		srv.Close()
		if err != nil {
			t.Fatalf("content-type %q: unexpected error: %v", ct, err)
		}
		if part.MIMEType != "image/jpeg" {
			t.Errorf("content-type %q: MIME = %q, want image/jpeg", ct, part.MIMEType)
		}
	}
}

func TestHTTPFetcher_ErrorStatuses(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := NewHTTPFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
		srv.Close()
		if err == nil {
			t.Errorf("status %d: expected error", status)
		}
	}
}

func TestHTTPFetcher_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if _, err := NewHTTPFetcher(nil).Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected error for unreachable host")
	}
}

func TestHTTPFetcher_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
	}))
	defer srv.Close()

	if _, err := NewHTTPFetcher(srv.Client()).Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected error for empty image body")
	}
}
