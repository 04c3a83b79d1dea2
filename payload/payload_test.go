// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	s, err := Text("  hello, world\n")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", s)
	_, err = Text(" \t\n")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"example.com", "https://example.com"},
		{" example.com/a?b=c ", "https://example.com/a?b=c"},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"ftp://example.com", "https://ftp://example.com"},
		{"HTTPS://example.com", "https://HTTPS://example.com"},
	}
	for _, tt := range tests {
		got, err := URL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := URL("   ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestWiFi(t *testing.T) {
	tests := []struct {
		name string
		w    WiFi
		want string
	}{
		{
			name: "wpa",
			w:    WiFi{SSID: "home", Password: "secret", Security: WPA},
			want: "WIFI:T:WPA;S:home;P:secret;;",
		},
		{
			name: "default security",
			w:    WiFi{SSID: "home", Password: "secret"},
			want: "WIFI:T:WPA;S:home;P:secret;;",
		},
		{
			name: "hidden wep",
			w:    WiFi{SSID: "lab", Password: "k", Security: WEP, Hidden: true},
			want: "WIFI:T:WEP;S:lab;P:k;H:true;;",
		},
		{
			name: "open",
			w:    WiFi{SSID: " cafe ", Password: "ignored", Security: NoPass},
			want: "WIFI:T:nopass;S:cafe;;",
		},
		{
			name: "open hidden",
			w:    WiFi{SSID: "cafe", Security: NoPass, Hidden: true},
			want: "WIFI:T:nopass;S:cafe;H:true;;",
		},
		{
			name: "escaped",
			w:    WiFi{SSID: `a;b,c:d`, Password: `"p\w'`},
			want: `WIFI:T:WPA;S:a\;b\,c\:d;P:\"p\\w\';;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.w.Payload()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := WiFi{SSID: "  ", Password: "x"}.Payload()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestContact(t *testing.T) {
	got, err := Contact{Name: "Ada Lovelace", Phone: "+44 20 7946 0000",
		Email: "ada@example.com"}.Payload()
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Ada Lovelace\n"+
		"TEL:+44 20 7946 0000\nEMAIL:ada@example.com\nEND:VCARD", got)

	got, err = Contact{Email: " bob@example.com "}.Payload()
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nEMAIL:bob@example.com\nEND:VCARD", got)

	_, err = Contact{Name: " "}.Payload()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "caf\u00e9", Normalize("cafe\u0301"))
	assert.Equal(t, "plain", Normalize("plain"))
}
