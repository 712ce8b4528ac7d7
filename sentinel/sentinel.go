// SPDX-License-Identifier: GPL-3.0-or-later
package sentinel

import (
	"context"
	"fmt"
	"time"

	"github.com/CrawX/go-inbox-sentinel/classify"
	"github.com/CrawX/go-inbox-sentinel/domain"
	"github.com/CrawX/go-inbox-sentinel/log"
	"github.com/CrawX/go-inbox-sentinel/mail"
	"github.com/CrawX/go-inbox-sentinel/mailsync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Syncer is the slice of the sync engine the orchestrator drives.
type Syncer interface {
	BootstrapCursor() (domain.Cursor, error)
	PollSince(cursor domain.Cursor) (domain.Cursor, []*domain.MessageRecord, error)
}

type Sentinel struct {
	persistence domain.Persistence
	service     domain.MailService
	scorer      domain.SpamScorer
	syncer      Syncer

	configuration *configuration

	l *logrus.Logger
}

func NewSentinel(persistence domain.Persistence, service domain.MailService, scorer domain.SpamScorer, syncer *mailsync.Syncer, configFunc ...ConfigFunc) (*Sentinel, error) {
	config := &configuration{
		SuspiciousLabel: "Suspicious",
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	if config.Policy == nil {
		config.Policy = &ThresholdPolicy{Act: config.AutoAct}
	}

	return &Sentinel{
		persistence:   persistence,
		service:       service,
		scorer:        scorer,
		syncer:        syncer,
		configuration: config,
		l:             log.Logger(log.LOG_SENTINEL),
	}, nil
}

// RunCycle executes one full sync, score, act, log pass. The very first
// cycle only establishes the baseline cursor, mail that existed before the
// baseline is never scored.
func (s *Sentinel) RunCycle() error {
	cursor, known, err := s.persistence.LoadCursor()
	if err != nil {
		return fmt.Errorf("could not load cursor: %w", err)
	}

	if !known {
		cursor, err = s.syncer.BootstrapCursor()
		if err != nil {
			return fmt.Errorf("could not bootstrap cursor: %w", err)
		}
		s.l.WithField("cursor", cursor).Info("Initialized baseline cursor")
		return nil
	}

	_, records, err := s.syncer.PollSince(cursor)
	if err != nil {
		return fmt.Errorf("could not poll for new mail: %w", err)
	}

	if len(records) == 0 {
		s.l.Debug("No new mail")
		return nil
	}
	s.l.WithField("newmails", len(records)).Info("Found new mail")

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Subject + "\n" + record.Snippet
	}
	modelScores, err := s.scorer.Predict(texts)
	if err != nil {
		return fmt.Errorf("could not score mails: %w", err)
	}

	for i, record := range records {
		heuristicScore, reasons := classify.Heuristics(record.Subject, record.Snippet, record.From)
		decision := classify.Fuse(heuristicScore, reasons, modelScores[i])

		s.l.WithFields(logrus.Fields{
			"subject":  mail.ShortSubject(record.Subject),
			"from":     record.From,
			"score":    decision.Score,
			"category": decision.Category,
		}).Info("Scored mail")

		s.notify(record, decision)

		label := s.configuration.Policy.Decide(record, decision)
		err = s.apply(record, label)
		if err != nil {
			return err
		}

		err = s.persistence.AppendDecision(domain.AppendDecision{
			MessageId:   record.Id,
			Predicted:   decision.ModelScore,
			Label:       label,
			Explanation: decision.Explanation,
			Subject:     record.Subject,
			Snippet:     record.Snippet,
		})
		if err != nil {
			return fmt.Errorf("could not append decision: %w", err)
		}
	}

	return nil
}

// Watch runs cycles on the given cron schedule until the context is
// canceled. Cycles never overlap and faults inside a cycle are logged, the
// loop only ends on cancellation.
func (s *Sentinel) Watch(ctx context.Context, schedule string) error {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	cronSchedule, err := parser.Parse(schedule)
	if err != nil {
		return fmt.Errorf("could not parse poll schedule: %w", err)
	}

	s.l.WithField("schedule", schedule).Info("Watching inbox")
	for {
		timer := time.NewTimer(time.Until(cronSchedule.Next(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.l.Info("Stopped watching")
			return nil
		case <-timer.C:
		}

		err := s.RunCycle()
		if err != nil {
			s.l.WithField("error", err).Error("Cycle failed, retrying on next tick")
		}
	}
}

func (s *Sentinel) notify(record *domain.MessageRecord, decision *domain.FusedDecision) {
	if s.configuration.Notifier == nil {
		return
	}

	title := "New mail"
	if decision.Category != domain.CategoryKeep {
		title = fmt.Sprintf("New mail (%s)", decision.Category)
	}

	url := ""
	if record.ThreadId != "" {
		url = fmt.Sprintf("https://mail.google.com/mail/u/0/#inbox/%s", record.ThreadId)
	}

	s.configuration.Notifier.Notify(title, record.From, record.Subject, url)
}

func (s *Sentinel) apply(record *domain.MessageRecord, label domain.Label) error {
	var add, remove []string
	switch label {
	case domain.LabelSpam:
		add, remove = []string{domain.SpamFolder}, []string{domain.InboxFolder}
	case domain.LabelSuspicious:
		labelId, err := s.service.EnsureLabel(s.configuration.SuspiciousLabel)
		if err != nil {
			return fmt.Errorf("could not resolve suspicious label: %w", err)
		}
		add = []string{labelId}
	default:
		// ham and none leave the message where it is
		return nil
	}

	if s.configuration.DryRun {
		s.l.WithFields(logrus.Fields{"subject": mail.ShortSubject(record.Subject), "label": label}).Info("Not applying label due to dry-run")
		return nil
	}

	err := s.service.ModifyLabels(record.Id, add, remove)
	if err != nil {
		return fmt.Errorf("could not apply label %s: %w", label, err)
	}

	s.l.WithFields(logrus.Fields{"subject": mail.ShortSubject(record.Subject), "label": label}).Info("Applied label")
	return nil
}
