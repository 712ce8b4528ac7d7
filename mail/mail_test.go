// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenderDomain(t *testing.T) {
	tests := []struct {
		name   string
		sender string
		domain string
	}{
		{"display name form", "Prize Desk <promo@Mail.Sub.Example.XYZ>", "mail.sub.example.xyz"},
		{"bare address", "friend@Company.com", "company.com"},
		{"address with display name but no brackets", "friend friend@company.com", "company.com"},
		{"no address part", "Mailer Daemon", "mailer daemon"},
		{"empty", "", ""},
		{"multiple at signs outside brackets", "weird@a@b.org", "b.org"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.domain, SenderDomain(tc.sender))
		})
	}
}

func TestShortSubject(t *testing.T) {
	assert.Equal(t, "short", ShortSubject("short"))
	assert.Equal(t, strings.Repeat("a", 30)+"...", ShortSubject(strings.Repeat("a", 35)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("abc", 0))

	// never cuts inside a rune
	truncated := Truncate("ääää", 5)
	assert.Equal(t, "ää", truncated)
}
