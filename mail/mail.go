// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"regexp"
	"strings"
)

var addressRe = regexp.MustCompile(`<[^@>]+@([^>]+)>`)

// SenderDomain extracts the domain from a From header. It understands the
// "Name <user@domain>" form and falls back to everything after the last @
// for bare addresses. The result is trimmed and lower-cased, it may be empty
// for senders without any address part.
func SenderDomain(sender string) string {
	m := addressRe.FindStringSubmatch(sender)
	if m != nil {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}

	at := strings.LastIndex(sender, "@")
	if at < 0 {
		return strings.ToLower(strings.TrimSpace(sender))
	}
	return strings.ToLower(strings.TrimSpace(sender[at+1:]))
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

// Truncate caps s at max bytes for notification fields. Cutting inside a
// multi-byte rune is avoided by backing up to the previous rune boundary.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
