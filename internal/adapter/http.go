// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/models"
)

const (
	getZipFileNamePath = "/v1/getZipFileName"
	dlZipPath          = "/v1/dlZip"
)

type httpRemote struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemote returns the WiscO HTTP implementation of [RemoteSyncClient].
// The base URL is taken from each request, so one remote serves any
// configuration.
func NewHTTPRemote(remoteCfg config.ClientRemote, logger *logger.Logger) RemoteSyncClient {
	return &httpRemote{
		client: utils.NewHTTPClient(remoteCfg.RequestTimeout),
		logger: logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ResolveArchive implements [RemoteSyncClient]. It POSTs the download settings
// to /v1/getZipFileName and returns the announced archive name.
func (h *httpRemote) ResolveArchive(ctx context.Context, req models.ResolveRequest) (models.ArchiveHandle, error) {
	baseURL, err := normalizeBaseURL(req.BaseURL)
	if err != nil {
		return models.ArchiveHandle{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	settings, err := json.Marshal(models.DownloadSettings{DlOnlyNew: req.OnlyNew})
	if err != nil {
		return models.ArchiveHandle{}, fmt.Errorf("%w: encode settings: %w", ErrAuthentication, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", req.Credential).
		SetFormData(map[string]string{"settings": string(settings)}).
		Post(baseURL + getZipFileNamePath)
	if err != nil {
		return models.ArchiveHandle{}, fmt.Errorf("%w: resolve request: %w", ErrAuthentication, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ArchiveHandle{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	var body models.ZipFileNameResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.ArchiveHandle{}, fmt.Errorf("%w: decode resolve response: %w", ErrAuthentication, err)
	}

	if body.Message == models.MsgNoNewFiles {
		return models.ArchiveHandle{}, ErrNoNewContent
	}
	if body.ZipFileName == "" {
		return models.ArchiveHandle{}, fmt.Errorf("%w: response carries no archive name (message %q)", ErrAuthentication, body.Message)
	}

	h.logger.Debug().Str("archive", body.ZipFileName).Msg("archive resolved")
	return models.ArchiveHandle{Name: body.ZipFileName}, nil
}

// FetchArchive implements [RemoteSyncClient]. It POSTs to /v1/dlZip and
// returns the whole response body.
func (h *httpRemote) FetchArchive(ctx context.Context, req models.ResolveRequest, handle models.ArchiveHandle) ([]byte, error) {
	baseURL, err := normalizeBaseURL(req.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", req.Credential).
		SetFormData(map[string]string{"zip_file_name": handle.Name}).
		Post(baseURL + dlZipPath)
	if err != nil {
		return nil, fmt.Errorf("%w: download request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	data := resp.Body()
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, ErrEmptyArchive)
	}
	if digest := resp.Header().Get(models.ArchiveDigestHeader); digest != "" && !utils.VerifyHash(data, digest) {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, ErrDigestMismatch)
	}

	h.logger.Debug().Str("archive", handle.Name).Int("bytes", len(data)).Msg("archive downloaded")
	return data, nil
}

