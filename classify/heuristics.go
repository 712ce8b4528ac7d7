// SPDX-License-Identifier: GPL-3.0-or-later
package classify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/CrawX/go-inbox-sentinel/mail"

	"golang.org/x/net/publicsuffix"
)

// HeuristicCap bounds the heuristic layer below certainty so it can never
// force a definite-spam classification without the model corroborating.
const HeuristicCap = 0.9

var suspiciousTerms = []string{
	"winner", "prize", "lottery", "bitcoin", "crypto", "viagra", "sex", "casino", "act now",
	"urgent", "final notice", "verify account", "password reset", "unusual activity", "gift card",
	"investment", "double your", "work from home", "earn $$$", "limited time", "risk-free",
}

var suspiciousSuffixes = map[string]bool{
	"zip": true, "tokyo": true, "top": true, "xyz": true, "loan": true,
	"click": true, "country": true, "gq": true, "work": true, "review": true,
}

var urlRe = regexp.MustCompile(`(?i)https?://`)

// Heuristics derives a bounded suspicion score and human-readable reasons
// from message metadata. Pure function, each rule contributes independently
// and the sum is clamped to [0, HeuristicCap].
func Heuristics(subject, snippet, sender string) (float64, []string) {
	text := strings.ToLower(subject + "\n" + snippet)
	reasons := []string{}
	score := 0.0

	hits := []string{}
	for _, term := range suspiciousTerms {
		if strings.Contains(text, term) {
			hits = append(hits, term)
		}
	}
	if len(hits) > 0 {
		score += min(0.4, 0.05*float64(len(hits)))
		shown := hits
		if len(shown) > 5 {
			shown = shown[:5]
		}
		reasons = append(reasons, fmt.Sprintf("suspicious terms: %s", strings.Join(shown, ", ")))
	}

	nLinks := len(urlRe.FindAllStringIndex(text, -1))
	if nLinks >= 2 {
		score += 0.15
		reasons = append(reasons, fmt.Sprintf("%d links", nLinks))
	}

	domain := mail.SenderDomain(sender)
	if domain != "" {
		if root, err := publicsuffix.EffectiveTLDPlusOne(domain); err == nil && domain != root {
			score += 0.05
			reasons = append(reasons, "nested subdomain")
		}
		suffix, _ := publicsuffix.PublicSuffix(domain)
		if suspiciousSuffixes[suffix] {
			score += 0.1
			reasons = append(reasons, fmt.Sprintf("suspicious TLD: .%s", suffix))
		}
	}

	if isUpper(subject) && len(subject) >= 6 {
		score += 0.05
		reasons = append(reasons, "ALL-CAPS subject")
	}

	return max(0.0, min(score, HeuristicCap)), reasons
}

// isUpper reports whether s contains at least one cased rune and no
// lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
