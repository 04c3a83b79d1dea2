// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package payload

import "strings"

// A Contact is a person's card.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Payload returns the contact as a vCard 3.0 with FN, TEL and EMAIL
// properties for the non-blank fields, lines separated by "\n".  It
// returns ErrEmpty if all fields are blank.
func (c Contact) Payload() (string, error) {
	name := strings.TrimSpace(c.Name)
	phone := strings.TrimSpace(c.Phone)
	email := strings.TrimSpace(c.Email)
	if name == "" && phone == "" && email == "" {
		return "", ErrEmpty
	}
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")
	for _, p := range [...]struct{ key, val string }{
		{"FN", name}, {"TEL", phone}, {"EMAIL", email},
	} {
		if p.val != "" {
			b.WriteString(p.key + ":" + p.val + "\n")
		}
	}
	b.WriteString("END:VCARD")
	return b.String(), nil
}
