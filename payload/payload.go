// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package payload builds the strings stored in common kinds of QR
// codes: plain text, web links, Wi-Fi network credentials and contact
// cards.
package payload // import "github.com/unixdj/qrenc/payload"

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned when there is nothing to encode.
var ErrEmpty = errors.New("payload: nothing to encode")

// Text returns s with surrounding white space removed.
func Text(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

// URL returns the trimmed link s, prefixed with "https://" unless it
// starts with "http://" or "https://".
func URL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return s, nil
}

// Normalize returns s in Unicode normalization form C, so that text
// typed with combining marks encodes to the same bytes as precomposed
// text.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
