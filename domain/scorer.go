// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/scorer.go -package=mocks . SpamScorer,ActionPolicy
package domain

type Category string

const (
	CategorySpam       = Category("spam")
	CategorySuspicious = Category("suspicious")
	CategoryKeep       = Category("keep")
)

type FusedDecision struct {
	Score       float64
	Category    Category
	Explanation string

	HeuristicScore float64
	ModelScore     float64
	Reasons        []string
}

type SpamScorer interface {
	// Predict returns the spam probability for every input text, order
	// preserving. An untrained scorer returns the neutral 0.5 for every
	// input instead of failing.
	Predict(texts []string) ([]float64, error)
	// Train refits the scorer from scratch and replaces any persisted
	// snapshot, there is no incremental update.
	Train(texts []string, spam []bool) error
	Trained() bool
}

// ActionPolicy turns a scored message into the label that is actually
// applied and logged. Implementations may ignore the suggestion entirely.
type ActionPolicy interface {
	Decide(record *MessageRecord, decision *FusedDecision) Label
}
