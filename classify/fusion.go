// SPDX-License-Identifier: GPL-3.0-or-later
package classify

import (
	"fmt"
	"strings"

	"github.com/CrawX/go-inbox-sentinel/domain"
)

// The blend deliberately trusts heuristics more than the model: before any
// training data exists the model reports the neutral 0.5, so the heuristic
// side has to dominate early-life behavior. Static design parameters, not
// adaptive.
const (
	HeuristicWeight = 0.6
	ModelWeight     = 0.4

	SpamThreshold       = 0.65
	SuspiciousThreshold = 0.5
)

// Combine blends the two independent signals into one actionable
// probability. Monotonically non-decreasing in both inputs.
func Combine(heuristic, model float64) float64 {
	return max(0.0, HeuristicWeight*heuristic+ModelWeight*model)
}

// Categorize derives the advisory category from a fused score. The acting
// side may override it.
func Categorize(score float64) domain.Category {
	switch {
	case score >= SpamThreshold:
		return domain.CategorySpam
	case score >= SuspiciousThreshold:
		return domain.CategorySuspicious
	default:
		return domain.CategoryKeep
	}
}

// Explain renders the heuristic reasons and the raw model score into the
// string stored in the decision ledger. Must stay byte-stable for fixed
// inputs, audit diffing depends on it.
func Explain(reasons []string, modelScore float64) string {
	parts := []string{}
	if len(reasons) > 0 {
		parts = append(parts, strings.Join(reasons, "; "))
	}
	parts = append(parts, fmt.Sprintf("model=%.2f", modelScore))
	return strings.Join(parts, " | ")
}

// Fuse runs the full decision pipeline for one message.
func Fuse(heuristic float64, reasons []string, model float64) *domain.FusedDecision {
	score := Combine(heuristic, model)
	return &domain.FusedDecision{
		Score:          score,
		Category:       Categorize(score),
		Explanation:    Explain(reasons, model),
		HeuristicScore: heuristic,
		ModelScore:     model,
		Reasons:        reasons,
	}
}
