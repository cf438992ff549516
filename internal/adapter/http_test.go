// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/models"
)

func newTestRemote(t *testing.T, timeout time.Duration) RemoteSyncClient {
	t.Helper()
	return NewHTTPRemote(config.ClientRemote{Kind: config.RemoteHTTP, RequestTimeout: timeout}, logger.Nop())
}

func testRequest(baseURL string) models.ResolveRequest {
	return models.ResolveRequest{BaseURL: baseURL, Credential: "k1", OnlyNew: true}
}

// ── ResolveArchive ──────────────────────────────────────────────────────────

func TestResolveArchive_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, getZipFileNamePath, r.URL.Path)
		assert.Equal(t, "k1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.JSONEq(t, `{"dlOnlyNew":true}`, r.PostForm.Get("settings"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"zip_file_name":"notes.zip"}`))
	}))
	defer srv.Close()

	handle, err := newTestRemote(t, time.Second).ResolveArchive(context.Background(), testRequest(srv.URL))

	require.NoError(t, err)
	assert.Equal(t, models.ArchiveHandle{Name: "notes.zip"}, handle)
}

func TestResolveArchive_OnlyNewFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.JSONEq(t, `{"dlOnlyNew":false}`, r.PostForm.Get("settings"))
		_, _ = w.Write([]byte(`{"zip_file_name":"all.zip"}`))
	}))
	defer srv.Close()

	req := testRequest(srv.URL)
	req.OnlyNew = false

	handle, err := newTestRemote(t, time.Second).ResolveArchive(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "all.zip", handle.Name)
}

func TestResolveArchive_NoNewContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"No new files to download"}`))
	}))
	defer srv.Close()

	_, err := newTestRemote(t, time.Second).ResolveArchive(context.Background(), testRequest(srv.URL))

	assert.ErrorIs(t, err, ErrNoNewContent)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

func TestResolveArchive_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: "bad key", wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrUnexpectedStatus},
		{name: "malformed json", status: http.StatusOK, body: "{not json"},
		{name: "missing name", status: http.StatusOK, body: `{}`},
		{name: "other message", status: http.StatusOK, body: `{"message":"Invalid key"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestRemote(t, time.Second).ResolveArchive(context.Background(), testRequest(srv.URL))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAuthentication)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestResolveArchive_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"zip_file_name":"late.zip"}`))
	}))
	defer srv.Close()

	_, err := newTestRemote(t, 50*time.Millisecond).ResolveArchive(context.Background(), testRequest(srv.URL))

	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestResolveArchive_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestRemote(t, time.Second).ResolveArchive(context.Background(), testRequest(url))

	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestResolveArchive_InvalidBaseURL(t *testing.T) {
	_, err := newTestRemote(t, time.Second).ResolveArchive(context.Background(), testRequest("  "))

	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── FetchArchive ────────────────────────────────────────────────────────────

func TestFetchArchive_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, dlZipPath, r.URL.Path)
		assert.Equal(t, "k1", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "notes.zip", r.PostForm.Get("zip_file_name"))

		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write([]byte("PK\x03\x04payload"))
	}))
	defer srv.Close()

	data, err := newTestRemote(t, time.Second).FetchArchive(context.Background(), testRequest(srv.URL), models.ArchiveHandle{Name: "notes.zip"})

	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04payload"), data)
}

func TestFetchArchive_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "empty body", status: http.StatusOK},
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "unauthorized", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestRemote(t, time.Second).FetchArchive(context.Background(), testRequest(srv.URL), models.ArchiveHandle{Name: "a.zip"})

			assert.ErrorIs(t, err, ErrNetwork)
			assert.NotErrorIs(t, err, ErrAuthentication)
		})
	}
}

func TestFetchArchive_Digest(t *testing.T) {
	payload := []byte("PK\x03\x04payload")

	tests := []struct {
		name    string
		digest  string
		wantErr bool
	}{
		{name: "matching", digest: utils.Hash(payload)},
		{name: "absent"},
		{name: "mismatch", digest: utils.Hash([]byte("other")), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.digest != "" {
					w.Header().Set(models.ArchiveDigestHeader, tt.digest)
				}
				_, _ = w.Write(payload)
			}))
			defer srv.Close()

			data, err := newTestRemote(t, time.Second).FetchArchive(context.Background(), testRequest(srv.URL), models.ArchiveHandle{Name: "a.zip"})

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNetwork)
				assert.ErrorIs(t, err, ErrDigestMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payload, data)
		})
	}
}

func TestFetchArchive_CanceledContext(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRemote(t, time.Second).FetchArchive(ctx, testRequest(srv.URL), models.ArchiveHandle{Name: "a.zip"})

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Zero(t, hits.Load())
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "https://wisco.tunnelto.dev", want: "https://wisco.tunnelto.dev"},
		{input: "https://wisco.tunnelto.dev/", want: "https://wisco.tunnelto.dev"},
		{input: "wisco.tunnelto.dev", want: "https://wisco.tunnelto.dev"},
		{input: " http://localhost:8080/ ", want: "http://localhost:8080"},
		{input: "", wantErr: true},
		{input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRemote(t *testing.T) {
	remote, err := NewRemote(context.Background(), config.ClientRemote{Kind: config.RemoteHTTP}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpRemote{}, remote)

	_, err = NewRemote(context.Background(), config.ClientRemote{Kind: "ftp"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownRemote)
}
