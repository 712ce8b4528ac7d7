// SPDX-License-Identifier: GPL-3.0-or-later
package trainer

import (
	"errors"
	"io"
	"testing"

	"github.com/CrawX/go-inbox-sentinel/domain"
	"github.com/CrawX/go-inbox-sentinel/domain/mocks"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func ledgerRows() []*domain.DecisionRecord {
	return []*domain.DecisionRecord{
		{Id: 1, MessageId: "m1", Label: domain.LabelSpam, Subject: "WINNER!!!", Snippet: "claim your prize now"},
		{Id: 2, MessageId: "m2", Label: domain.LabelHam, Subject: "Standup notes", Snippet: "see attached summary"},
		{Id: 3, MessageId: "m3", Label: domain.LabelSpam, Subject: "Free bitcoin", Snippet: "double your investment"},
	}
}

func TestRetrain_FitsOnStoredMessageText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persistence := mocks.NewMockPersistence(ctrl)
	scorer := mocks.NewMockSpamScorer(ctrl)

	persistence.EXPECT().LabeledDecisions().Return(ledgerRows(), nil)
	scorer.EXPECT().Train(
		gomock.Eq([]string{
			"WINNER!!!\nclaim your prize now",
			"Standup notes\nsee attached summary",
			"Free bitcoin\ndouble your investment",
		}),
		gomock.Eq([]bool{true, false, true}),
	).Return(nil)

	trainer := newTestTrainer(persistence, scorer)
	samples, err := trainer.Retrain(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, samples)
}

func TestRetrain_NotEnoughSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persistence := mocks.NewMockPersistence(ctrl)
	scorer := mocks.NewMockSpamScorer(ctrl)

	persistence.EXPECT().LabeledDecisions().Return(ledgerRows(), nil)

	trainer := newTestTrainer(persistence, scorer)
	samples, err := trainer.Retrain(20)
	assert.Equal(t, 0, samples)

	notEnough := &ErrNotEnoughSamples{}
	assert.True(t, errors.As(err, &notEnough))
	assert.Equal(t, 3, notEnough.Have)
	assert.Equal(t, 20, notEnough.Want)
	assert.EqualError(t, err, "not enough labeled decisions yet, have 3, want at least 20")
}

func TestRetrain_LedgerFaultPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persistence := mocks.NewMockPersistence(ctrl)
	scorer := mocks.NewMockSpamScorer(ctrl)

	persistence.EXPECT().LabeledDecisions().Return(nil, errors.New("db locked"))

	trainer := newTestTrainer(persistence, scorer)
	_, err := trainer.Retrain(1)
	assert.EqualError(t, err, "could not read labeled decisions: db locked")
}

func TestRetrain_TrainFaultPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persistence := mocks.NewMockPersistence(ctrl)
	scorer := mocks.NewMockSpamScorer(ctrl)

	persistence.EXPECT().LabeledDecisions().Return(ledgerRows(), nil)
	scorer.EXPECT().Train(gomock.Any(), gomock.Any()).Return(errors.New("single-class corpus"))

	trainer := newTestTrainer(persistence, scorer)
	_, err := trainer.Retrain(1)
	assert.EqualError(t, err, "could not train model: single-class corpus")
}

func newTestTrainer(persistence domain.Persistence, scorer domain.SpamScorer) *Trainer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Trainer{
		persistence: persistence,
		scorer:      scorer,
		l:           logger,
	}
}
