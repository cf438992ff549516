// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notesync command-line application.
//
// It wires the vault, the sync history, the remote and the archive codec into
// the sync services and exposes them as cobra commands.
package client
