// SPDX-License-Identifier: GPL-3.0-or-later
package mailsync

import (
	"errors"
	"fmt"

	"github.com/CrawX/go-inbox-sentinel/domain"
	"github.com/CrawX/go-inbox-sentinel/log"

	"github.com/sirupsen/logrus"
)

const (
	// BootstrapSample is how many recent messages are inspected to pick a
	// baseline cursor on first run.
	BootstrapSample = 10

	DefaultFetchConcurrency = 4
)

// Syncer tracks the mailbox's mutation stream and turns deltas into
// deduplicated new-message records. The cursor it persists only ever moves
// forward.
type Syncer struct {
	service     domain.MailService
	persistence domain.Persistence
	fetcher     *ConcurrentFetcher
	concurrency int

	l *logrus.Logger
}

func NewSyncer(service domain.MailService, persistence domain.Persistence, fetchConcurrency int) *Syncer {
	if fetchConcurrency < 1 {
		fetchConcurrency = DefaultFetchConcurrency
	}

	return &Syncer{
		service:     service,
		persistence: persistence,
		fetcher:     &ConcurrentFetcher{service},
		concurrency: fetchConcurrency,
		l:           log.Logger(log.LOG_SYNC),
	}
}

// BootstrapCursor picks a safe starting point so only mail arriving after
// this moment is reacted to. It takes the maximum mutation position across a
// sample of recent messages and falls back to the mailbox's current position
// for an empty mailbox. The result always overwrites the stored cursor.
func (s *Syncer) BootstrapCursor() (domain.Cursor, error) {
	ids, err := s.service.ListRecentIds(BootstrapSample)
	if err != nil {
		return 0, fmt.Errorf("could not list recent messages: %w", err)
	}

	var baseline domain.Cursor
	for _, id := range ids {
		record, err := s.service.Metadata(id)
		if err != nil {
			return 0, fmt.Errorf("could not fetch metadata for %s: %w", id, err)
		}
		if record.Position > baseline {
			baseline = record.Position
		}
	}

	if baseline == 0 {
		baseline, err = s.service.CurrentCursor()
		if err != nil {
			return 0, fmt.Errorf("could not fetch current mailbox position: %w", err)
		}
	}

	err = s.persistence.SaveCursor(baseline)
	if err != nil {
		return 0, fmt.Errorf("could not save baseline cursor: %w", err)
	}

	s.l.WithFields(logrus.Fields{"cursor": baseline, "sampled": len(ids)}).Info("Baselined cursor")
	return baseline, nil
}

// PollSince walks the mutation feed from cursor and returns the advanced
// cursor plus the new inbox messages, first-seen order, each at most once.
// An invalid or expired starting cursor is recovered by re-baselining and
// surfaces only as an empty batch. All other faults propagate with no state
// committed.
func (s *Syncer) PollSince(cursor domain.Cursor) (domain.Cursor, []*domain.MessageRecord, error) {
	newCursor := cursor
	ids := []string{}
	seen := map[string]bool{}

	pageToken := ""
	pages := 0
	for {
		page, err := s.service.HistoryPage(cursor, pageToken)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCursor) {
				s.l.WithField("cursor", cursor).Warn("Cursor invalid or expired, re-baselining")
				baseline, err := s.BootstrapCursor()
				if err != nil {
					return 0, nil, fmt.Errorf("could not re-baseline after invalid cursor: %w", err)
				}
				return baseline, []*domain.MessageRecord{}, nil
			}
			return 0, nil, fmt.Errorf("could not fetch history page: %w", err)
		}
		pages++

		for _, event := range page.Events {
			if event.Position > newCursor {
				newCursor = event.Position
			}
			// Events for messages no longer carrying the inbox tag are not
			// new, currently-inboxed mail.
			if !event.InInbox {
				continue
			}
			if seen[event.MessageId] {
				continue
			}
			seen[event.MessageId] = true
			ids = append(ids, event.MessageId)
		}

		if page.NextToken == "" {
			break
		}
		pageToken = page.NextToken
	}

	// A feed that legitimately reports zero deltas must not stall the
	// cursor, the mailbox's own position still advances.
	if newCursor == cursor {
		current, err := s.service.CurrentCursor()
		if err != nil {
			return 0, nil, fmt.Errorf("could not fetch current mailbox position: %w", err)
		}
		if current > newCursor {
			newCursor = current
		}
	}

	records := []*domain.MessageRecord{}
	if len(ids) > 0 {
		results := s.fetcher.MetadataAll(ids, s.concurrency)
		for i, result := range results {
			if result.Error != nil {
				return 0, nil, fmt.Errorf("could not fetch metadata for %s: %w", ids[i], result.Error)
			}
			records = append(records, result.Record)
		}
	}

	if newCursor != cursor {
		err := s.persistence.SaveCursor(newCursor)
		if err != nil {
			return 0, nil, fmt.Errorf("could not save cursor: %w", err)
		}
	}

	s.l.WithFields(logrus.Fields{"cursor": newCursor, "pages": pages, "newmails": len(records)}).Debug("Polled mutation feed")
	return newCursor, records, nil
}
