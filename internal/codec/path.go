// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"strings"
)

// NormalizeEntryPath turns an archive member name into a relative,
// forward-slash path. Backslashes are treated as separators, leading
// separators and drive letters are stripped and "." segments dropped.
// A ".." segment, a NUL byte or an empty result yields [ErrUnsafePath].
func NormalizeEntryPath(name string) (string, error) {
	if strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q contains NUL", ErrUnsafePath, name)
	}

	p := strings.ReplaceAll(name, `\`, "/")
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		p = p[2:]
	}

	segments := strings.Split(p, "/")
	clean := make([]string, 0, len(segments))
	for _, s := range segments {
		switch s {
		case "", ".":
			continue
		case "..":
			return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
		}
		clean = append(clean, s)
	}

	if len(clean) == 0 {
		return "", fmt.Errorf("%w: %q is empty", ErrUnsafePath, name)
	}

	return strings.Join(clean, "/"), nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
