// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package payload

import "strings"

// Wi-Fi authentication types.
const (
	WPA    = "WPA"
	WEP    = "WEP"
	NoPass = "nopass"
)

// A WiFi describes a wireless network for a WIFI: code.
type WiFi struct {
	SSID     string
	Password string
	Security string // WPA, WEP or NoPass; empty means WPA
	Hidden   bool
}

var wifiEscaper = strings.NewReplacer(
	`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`, `'`, `\'`)

// Payload returns the network in the form
//
//	WIFI:T:WPA;S:ssid;P:password;H:true;;
//
// with special characters in SSID and Password escaped.  For NoPass
// networks the password is omitted.  Payload returns ErrEmpty if the
// SSID is blank.
func (w WiFi) Payload() (string, error) {
	ssid := strings.TrimSpace(w.SSID)
	if ssid == "" {
		return "", ErrEmpty
	}
	sec := w.Security
	if sec == "" {
		sec = WPA
	}
	var b strings.Builder
	b.WriteString("WIFI:T:" + sec + ";S:" + wifiEscaper.Replace(ssid) + ";")
	if sec != NoPass {
		b.WriteString("P:" + wifiEscaper.Replace(w.Password) + ";")
	}
	if w.Hidden {
		b.WriteString("H:true;")
	}
	b.WriteByte(';')
	return b.String(), nil
}
