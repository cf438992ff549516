// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

// s3API is the subset of *s3.Client used by the S3 remote.
type s3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Remote struct {
	client  s3API
	timeout time.Duration
	logger  *logger.Logger
}

// NewS3Remote loads the default AWS configuration (environment, shared
// config and credentials files) and returns an S3 implementation of
// [RemoteSyncClient].
//
// The request base URL has the form s3://bucket/prefix. Archives for a
// credential are the objects under prefix/<credential>/; the most recently
// modified one is resolved.
func NewS3Remote(ctx context.Context, remoteCfg config.ClientRemote, logger *logger.Logger) (RemoteSyncClient, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if remoteCfg.S3.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(remoteCfg.S3.Profile))
	}
	if remoteCfg.S3.Region != "" {
		opts = append(opts, awsconfig.WithRegion(remoteCfg.S3.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newS3Remote(s3.NewFromConfig(awsCfg), remoteCfg.RequestTimeout, logger), nil
}

func newS3Remote(client s3API, timeout time.Duration, logger *logger.Logger) *s3Remote {
	return &s3Remote{client: client, timeout: timeout, logger: logger}
}

func parseS3URL(raw string) (bucket, prefix string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: expected s3://bucket/prefix, got %q", ErrInvalidBaseURL, raw)
	}

	return u.Host, strings.Trim(u.Path, "/"), nil
}

func credentialPrefix(prefix, credential string) (string, error) {
	if credential == "" || strings.ContainsAny(credential, "/\\") || credential == "." || credential == ".." {
		return "", fmt.Errorf("%w: credential is not usable as a key prefix", ErrUnauthorized)
	}

	return path.Join(prefix, credential) + "/", nil
}

func (r *s3Remote) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// ResolveArchive implements [RemoteSyncClient].
func (r *s3Remote) ResolveArchive(ctx context.Context, req models.ResolveRequest) (models.ArchiveHandle, error) {
	bucket, prefix, err := parseS3URL(req.BaseURL)
	if err != nil {
		return models.ArchiveHandle{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	keyPrefix, err := credentialPrefix(prefix, req.Credential)
	if err != nil {
		return models.ArchiveHandle{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var newest *types.Object
	paginator := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(keyPrefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return models.ArchiveHandle{}, fmt.Errorf("%w: failed to list objects: %w", ErrAuthentication, err)
		}

		for i := range page.Contents {
			obj := page.Contents[i]
			if obj.Key == nil || strings.HasSuffix(*obj.Key, "/") {
				continue
			}
			if newest == nil || isNewer(obj, *newest) {
				newest = &obj
			}
		}
	}

	if newest == nil {
		return models.ArchiveHandle{}, ErrNoNewContent
	}

	modified := aws.ToTime(newest.LastModified)
	if req.OnlyNew && req.Since != nil && !modified.After(*req.Since) {
		return models.ArchiveHandle{}, ErrNoNewContent
	}

	key := aws.ToString(newest.Key)
	r.logger.Debug().Str("bucket", bucket).Str("key", key).Time("modified", modified).Msg("archive resolved")
	return models.ArchiveHandle{Name: key}, nil
}

func isNewer(candidate, current types.Object) bool {
	c, cur := aws.ToTime(candidate.LastModified), aws.ToTime(current.LastModified)
	if c.Equal(cur) {
		return aws.ToString(candidate.Key) > aws.ToString(current.Key)
	}
	return c.After(cur)
}

// FetchArchive implements [RemoteSyncClient].
func (r *s3Remote) FetchArchive(ctx context.Context, req models.ResolveRequest, handle models.ArchiveHandle) ([]byte, error) {
	bucket, prefix, err := parseS3URL(req.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	keyPrefix, err := credentialPrefix(prefix, req.Credential)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if !strings.HasPrefix(handle.Name, keyPrefix) {
		return nil, fmt.Errorf("%w: key %q is outside %q", ErrNetwork, handle.Name, keyPrefix)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(handle.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get object: %w", ErrNetwork, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read object: %w", ErrNetwork, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, ErrEmptyArchive)
	}

	r.logger.Debug().Str("key", handle.Name).Int("bytes", len(data)).Msg("archive downloaded")
	return data, nil
}
