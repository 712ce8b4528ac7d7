// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence

type Label string

const (
	LabelSpam       = Label("spam")
	LabelHam        = Label("ham")
	LabelSuspicious = Label("suspicious")
	LabelNone       = Label("none")
)

type DecisionRecord struct {
	Id          int64
	MessageId   string
	Predicted   float64
	Label       Label
	Explanation string
	Subject     string
	Snippet     string
	CreatedAt   time.Time
}

type AppendDecision struct {
	MessageId   string
	Predicted   float64
	Label       Label
	Explanation string
	Subject     string
	Snippet     string
}

type Persistence interface {
	Close() error

	// LoadCursor returns the persisted cursor and whether one exists yet.
	LoadCursor() (Cursor, bool, error)
	SaveCursor(cursor Cursor) error

	// AppendDecision inserts one immutable ledger row with a server-assigned
	// timestamp and a strictly increasing id.
	AppendDecision(decision AppendDecision) error
	// RecentDecisions returns ledger rows newest first, all of them when
	// limit is <= 0.
	RecentDecisions(limit int) ([]*DecisionRecord, error)
	// LabeledDecisions returns only rows with an explicit spam or ham label,
	// the supervised subset the trainer is allowed to fit on.
	LabeledDecisions() ([]*DecisionRecord, error)
}
