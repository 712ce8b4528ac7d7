// SPDX-License-Identifier: GPL-3.0-or-later
package trainer

import (
	"fmt"

	"github.com/CrawX/go-inbox-sentinel/domain"
	"github.com/CrawX/go-inbox-sentinel/log"

	"github.com/sirupsen/logrus"
)

// ErrNotEnoughSamples is returned when the ledger does not yet hold enough
// explicitly labeled decisions to refit the model.
type ErrNotEnoughSamples struct {
	Have, Want int
}

func (e *ErrNotEnoughSamples) Error() string {
	return fmt.Sprintf("not enough labeled decisions yet, have %d, want at least %d", e.Have, e.Want)
}

// Trainer refits the statistical scorer from the decision ledger. Only rows
// with an explicit spam or ham label count as supervised data, and the model
// is fit on the stored message text, not on the explanation string.
type Trainer struct {
	persistence domain.Persistence
	scorer      domain.SpamScorer

	l *logrus.Logger
}

func NewTrainer(persistence domain.Persistence, scorer domain.SpamScorer) *Trainer {
	return &Trainer{
		persistence: persistence,
		scorer:      scorer,
		l:           log.Logger(log.LOG_TRAINER),
	}
}

// Retrain reads the supervised subset of the ledger and replaces the model
// with a fresh fit. Returns the number of samples trained on.
func (t *Trainer) Retrain(minSamples int) (int, error) {
	decisions, err := t.persistence.LabeledDecisions()
	if err != nil {
		return 0, fmt.Errorf("could not read labeled decisions: %w", err)
	}

	texts := []string{}
	spam := []bool{}
	for _, decision := range decisions {
		texts = append(texts, decision.Subject+"\n"+decision.Snippet)
		spam = append(spam, decision.Label == domain.LabelSpam)
	}

	if len(texts) < minSamples {
		return 0, &ErrNotEnoughSamples{Have: len(texts), Want: minSamples}
	}

	err = t.scorer.Train(texts, spam)
	if err != nil {
		return 0, fmt.Errorf("could not train model: %w", err)
	}

	t.l.WithField("samples", len(texts)).Info("Retrained model")
	return len(texts), nil
}
