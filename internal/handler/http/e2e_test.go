// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/codec"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

// The client remote and the reference server must agree on the wire format.
func TestHTTPRemoteAgainstServer(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, map[string]string{
		"a.md":     "x",
		"dir/b.md": "y",
	}).Init())
	defer srv.Close()

	remote := adapter.NewHTTPRemote(config.ClientRemote{Kind: config.RemoteHTTP, RequestTimeout: 5 * time.Second}, logger.Nop())
	req := models.ResolveRequest{BaseURL: srv.URL, Credential: "k1", OnlyNew: true}
	ctx := context.Background()

	handle, err := remote.ResolveArchive(ctx, req)
	require.NoError(t, err)

	data, err := remote.FetchArchive(ctx, req, handle)
	require.NoError(t, err)

	entries, err := codec.NewZipCodec(logger.Nop()).Decode(data)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = remote.ResolveArchive(ctx, req)
	assert.ErrorIs(t, err, adapter.ErrNoNewContent)

	_, err = remote.ResolveArchive(ctx, models.ResolveRequest{BaseURL: srv.URL, Credential: "nope"})
	assert.ErrorIs(t, err, adapter.ErrAuthentication)
}
