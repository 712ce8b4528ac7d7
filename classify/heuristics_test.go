// SPDX-License-Identifier: GPL-3.0-or-later
package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	spamSubject = "WINNER!!! CLAIM YOUR PRIZE"
	spamSnippet = "urgent: act now to claim your lottery prize! double your bitcoin investment, " +
		"risk-free casino gift card waiting http://a.example.xyz http://b.example.xyz"
	spamSender = "Prize Desk <promo@mail.sub.example.xyz>"
)

func TestHeuristics(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		snippet string
		sender  string
		score   float64
		reasons int
	}{
		{
			// every rule triggers: 0.4 terms + 0.15 links + 0.05 subdomain
			// + 0.1 tld + 0.05 caps
			"all rules", spamSubject, spamSnippet, spamSender, 0.75, 5,
		},
		{
			"clean mail", "Lunch tomorrow?", "Want to grab lunch at noon?", "friend@company.com", 0.0, 0,
		},
		{
			"single term", "Your invoice", "the prize committee wrote back", "billing@company.com", 0.05, 1,
		},
		{
			"two links alone", "photos", "see http://a.com and https://b.com", "friend@company.com", 0.15, 1,
		},
		{
			"nested subdomain alone", "hello", "how are you", "noreply@mail.news.company.com", 0.05, 1,
		},
		{
			"suspicious tld alone", "hello", "how are you", "info@company.xyz", 0.1, 1,
		},
		{
			"caps subject alone", "MEETING MOVED", "room changed to 4b", "boss@company.com", 0.05, 1,
		},
		{
			"caps subject too short", "HI!", "hello", "friend@company.com", 0.0, 0,
		},
		{
			"lowercase subject no caps bonus", "winner announcement", "congrats to the raffle winner", "hr@company.com", 0.05, 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, reasons := Heuristics(tc.subject, tc.snippet, tc.sender)
			assert.InDelta(t, tc.score, score, 1e-9)
			assert.Len(t, reasons, tc.reasons)
		})
	}
}

func TestHeuristicsBounds(t *testing.T) {
	tests := [][3]string{
		{spamSubject, spamSnippet, spamSender},
		{"", "", ""},
		{"A", "http://x http://y http://z", "a@b.zip"},
	}

	for _, tc := range tests {
		score, _ := Heuristics(tc[0], tc[1], tc[2])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, HeuristicCap)
	}
}

func TestHeuristicsReasonListsAtMostFiveTerms(t *testing.T) {
	snippet := "winner prize lottery bitcoin crypto casino urgent investment"
	score, reasons := Heuristics("hello", snippet, "friend@company.com")

	// 8 distinct hits cap the term contribution at 0.4
	assert.InDelta(t, 0.4, score, 1e-9)
	assert.Len(t, reasons, 1)
	assert.Equal(t, "suspicious terms: winner, prize, lottery, bitcoin, crypto", reasons[0])
}

func TestHeuristicsLinkCountInReason(t *testing.T) {
	_, reasons := Heuristics("hello", "http://a http://b HTTPS://c", "friend@company.com")
	assert.Equal(t, []string{"3 links"}, reasons)
}

func TestHeuristicsPureFunction(t *testing.T) {
	score1, reasons1 := Heuristics(spamSubject, spamSnippet, spamSender)
	score2, reasons2 := Heuristics(spamSubject, spamSnippet, spamSender)
	assert.Equal(t, score1, score2)
	assert.Equal(t, reasons1, reasons2)
}
