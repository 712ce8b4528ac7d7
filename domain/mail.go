// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

//go:generate mockgen -destination=mocks/mail.go -package=mocks . MailService,Notifier

// Cursor is a position in the mailbox's mutation stream. It is only ever
// compared for order and equality; its concrete value belongs to the mail
// service.
type Cursor uint64

// Well-known folder tags of the mail service.
const (
	InboxFolder = "INBOX"
	SpamFolder  = "SPAM"
)

// ErrInvalidCursor is reported by MailService.HistoryPage when the starting
// cursor is expired or unknown to the mail service. The sync engine recovers
// from it by re-baselining, all other faults propagate.
var ErrInvalidCursor = errors.New("cursor is invalid or expired")

type MessageRecord struct {
	Id       string
	ThreadId string
	From     string
	Subject  string
	Snippet  string
	Position Cursor
}

// MutationEvent is one "message added" entry from the mutation feed.
// InInbox reflects the message's labels at emission time, a message that was
// added and later archived or deleted arrives with InInbox false.
type MutationEvent struct {
	Position  Cursor
	MessageId string
	InInbox   bool
}

type HistoryPage struct {
	Events    []MutationEvent
	NextToken string
}

type MailService interface {
	ListRecentIds(max int64) ([]string, error)
	Metadata(id string) (*MessageRecord, error)
	HistoryPage(start Cursor, pageToken string) (*HistoryPage, error)
	CurrentCursor() (Cursor, error)
	EnsureLabel(name string) (string, error)
	ModifyLabels(id string, add []string, remove []string) error
}

// Notifier delivers a best-effort desktop notification. Implementations
// must never fail loudly, a lost notification is acceptable.
type Notifier interface {
	Notify(title, subtitle, message, url string)
}
