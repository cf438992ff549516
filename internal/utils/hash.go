// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Hash returns the hex-encoded SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// VerifyHash reports whether digest is the hex SHA-256 of data. Case is
// ignored.
func VerifyHash(data []byte, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(data)), []byte(strings.ToLower(strings.TrimSpace(digest)))) == 1
}
