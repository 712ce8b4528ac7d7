// SPDX-License-Identifier: GPL-3.0-or-later
package sentinel

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/CrawX/go-inbox-sentinel/domain"
	"github.com/CrawX/go-inbox-sentinel/mail"
)

// ThresholdPolicy follows the fused category: spam and suspicious map to
// their labels when acting is enabled, everything else is logged only.
type ThresholdPolicy struct {
	Act bool
}

func (p *ThresholdPolicy) Decide(record *domain.MessageRecord, decision *domain.FusedDecision) domain.Label {
	if !p.Act {
		return domain.LabelNone
	}

	switch decision.Category {
	case domain.CategorySpam:
		return domain.LabelSpam
	case domain.CategorySuspicious:
		return domain.LabelSuspicious
	default:
		return domain.LabelNone
	}
}

// PromptPolicy asks the operator for every message. The answer becomes the
// ledger label, so explicit spam/keep answers feed future training.
type PromptPolicy struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (p *PromptPolicy) Decide(record *domain.MessageRecord, decision *domain.FusedDecision) domain.Label {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}

	fmt.Fprintf(p.Out, "\n%s\n  from: %s\n  score: %.2f (%s)\n  %s\n", mail.ShortSubject(record.Subject), record.From, decision.Score, decision.Category, decision.Explanation)
	fmt.Fprintf(p.Out, "[s]pam / [k]eep / [l]abel suspicious / [n]othing? ")

	line, err := p.reader.ReadString('\n')
	if err != nil {
		return domain.LabelNone
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "spam":
		return domain.LabelSpam
	case "k", "keep":
		return domain.LabelHam
	case "l", "label":
		return domain.LabelSuspicious
	default:
		return domain.LabelNone
	}
}
