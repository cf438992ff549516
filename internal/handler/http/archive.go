// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/service"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/models"
)

// getZipFileName prepares an archive for the caller's sync key and answers
// with its name, or with [models.MsgNoNewFiles] when there is nothing to
// pack.
func (h *Handler) getZipFileName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	syncKey, _ := syncKeyFromContext(ctx)

	settings, err := parseDownloadSettings(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getZipFileName").Msg("invalid settings")
		writeError(w, err)
		return
	}

	name, err := h.services.ArchiveService.PrepareArchive(ctx, syncKey, settings.DlOnlyNew)
	if errors.Is(err, service.ErrNoNewFiles) {
		_, _ = utils.WriteJSON(w, models.ZipFileNameResponse{Message: models.MsgNoNewFiles}, http.StatusOK)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.getZipFileName").Msg("error preparing archive")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ZipFileNameResponse{ZipFileName: name}, http.StatusOK)
}

// downloadZip hands out the archive prepared by getZipFileName. The
// zip_file_name form field is optional.
func (h *Handler) downloadZip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	syncKey, _ := syncKeyFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.downloadZip").Msg("invalid form body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	name, data, err := h.services.ArchiveService.DownloadArchive(ctx, syncKey, r.PostForm.Get("zip_file_name"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadZip").Msg("error downloading archive")
		writeError(w, err)
		return
	}

	w.Header().Set(models.ArchiveDigestHeader, utils.Hash(data))
	_, _ = utils.WriteArchive(w, name, "application/zip", data)
}

func parseDownloadSettings(r *http.Request) (models.DownloadSettings, error) {
	var settings models.DownloadSettings

	if err := r.ParseForm(); err != nil {
		return settings, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	raw := r.PostForm.Get("settings")
	if raw == "" {
		return settings, nil
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return settings, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return settings, nil
}
