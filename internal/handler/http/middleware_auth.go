// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/notesync/internal/logger"
)

type syncKeyCtxKey struct{}

// auth admits requests whose "Authorization" header is a configured sync
// key and stores the key in the request context. The header carries the
// bare key, without a scheme.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		syncKey := strings.TrimSpace(r.Header.Get("Authorization"))
		if syncKey == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		ctx := r.Context()
		if err := h.services.ArchiveService.Authorize(ctx, syncKey); err != nil {
			log.Err(err).Msg("request with unknown sync key")
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, syncKeyCtxKey{}, syncKey)))
	})
}

func syncKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(syncKeyCtxKey{}).(string)
	return key, ok && key != ""
}
