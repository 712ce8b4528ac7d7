// SPDX-License-Identifier: GPL-3.0-or-later
package classify

import (
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/CrawX/go-inbox-sentinel/log"

	"github.com/jbrukh/bayesian"
	"github.com/sirupsen/logrus"
)

const (
	classSpam = bayesian.Class("spam")
	classHam  = bayesian.Class("ham")
)

// BayesScorer is a naive-Bayes spam probability estimator with a snapshot
// file on disk. Before the first successful Train it has no classifier and
// reports the neutral 0.5 for every input.
type BayesScorer struct {
	path       string
	classifier *bayesian.Classifier

	l *logrus.Logger
}

func NewBayesScorer(path string) (*BayesScorer, error) {
	scorer := &BayesScorer{
		path: path,
		l:    log.Logger(log.LOG_CLASSIFY),
	}

	if _, err := os.Stat(path); err == nil {
		classifier, err := bayesian.NewClassifierFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not load model snapshot: %w", err)
		}
		scorer.classifier = classifier
		scorer.l.WithFields(logrus.Fields{"file": path, "documents": classifier.Learned()}).Info("Loaded model snapshot")
	} else {
		scorer.l.WithField("file", path).Info("No model snapshot found, starting cold")
	}

	return scorer, nil
}

func (s *BayesScorer) Trained() bool {
	return s.classifier != nil && s.classifier.Learned() > 0
}

func (s *BayesScorer) Predict(texts []string) ([]float64, error) {
	scores := make([]float64, len(texts))
	if !s.Trained() {
		for i := range scores {
			scores[i] = 0.5
		}
		return scores, nil
	}

	// The spam class is located by value, the classifier's internal column
	// order is not part of the contract.
	spamIdx := -1
	for i, class := range s.classifier.Classes {
		if class == classSpam {
			spamIdx = i
		}
	}
	if spamIdx < 0 {
		return nil, fmt.Errorf("model snapshot has no %q class", classSpam)
	}

	for i, text := range texts {
		logScores, _, _ := s.classifier.LogScores(tokenize(text))
		scores[i] = normalize(logScores, spamIdx)
	}

	return scores, nil
}

func (s *BayesScorer) Train(texts []string, spam []bool) error {
	if len(texts) != len(spam) {
		return fmt.Errorf("got %d texts but %d labels", len(texts), len(spam))
	}

	nSpam, nHam := 0, 0
	for _, isSpam := range spam {
		if isSpam {
			nSpam++
		} else {
			nHam++
		}
	}
	if nSpam == 0 || nHam == 0 {
		return fmt.Errorf("training data must contain both classes, got %d spam and %d ham", nSpam, nHam)
	}

	// Full refit, the previous parameters and snapshot are superseded.
	classifier := bayesian.NewClassifier(classSpam, classHam)
	for i, text := range texts {
		class := classHam
		if spam[i] {
			class = classSpam
		}
		classifier.Learn(tokenize(text), class)
	}

	err := classifier.WriteToFile(s.path)
	if err != nil {
		return fmt.Errorf("could not write model snapshot: %w", err)
	}

	s.classifier = classifier
	s.l.WithFields(logrus.Fields{"spam": nSpam, "ham": nHam, "file": s.path}).Info("Trained model")
	return nil
}

// normalize turns unnormalized log scores into the probability of the class
// at idx. Working in log space avoids the underflow that raw probability
// products hit on longer documents.
func normalize(logScores []float64, idx int) float64 {
	maxScore := math.Inf(-1)
	for _, score := range logScores {
		if score > maxScore {
			maxScore = score
		}
	}

	sum := 0.0
	exps := make([]float64, len(logScores))
	for i, score := range logScores {
		exps[i] = math.Exp(score - maxScore)
		sum += exps[i]
	}
	if sum == 0 {
		return 0.5
	}

	return exps[idx] / sum
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
