// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-inbox-sentinel/domain"
	"github.com/CrawX/go-inbox-sentinel/log"
	"github.com/CrawX/go-inbox-sentinel/persistence/migrations"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	migrationSource := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       "sql",
	}

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

func (p *Persistence) LoadCursor() (domain.Cursor, bool, error) {
	var cursor int64
	err := p.db.Get(
		&cursor,
		`SELECT cursor from syncstate WHERE id = 1`,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("could not query db: %w", err)
	}

	return domain.Cursor(cursor), true, nil
}

func (p *Persistence) SaveCursor(cursor domain.Cursor) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO syncstate (id, cursor) VALUES (1, ?)",
		int64(cursor),
	)

	if err != nil {
		return fmt.Errorf("could not save cursor: %w", err)
	}

	p.l.WithField("Cursor", cursor).Debug("Persisted cursor")
	return nil
}

func (p *Persistence) AppendDecision(decision domain.AppendDecision) error {
	_, err := p.db.Exec(
		"INSERT INTO decisions(messageid, predicted, label, explanation, subject, snippet, createdat) VALUES(?, ?, ?, ?, ?, ?, ?)",
		decision.MessageId,
		decision.Predicted,
		string(decision.Label),
		decision.Explanation,
		decision.Subject,
		decision.Snippet,
		time.Now().Unix(),
	)

	if err != nil {
		return fmt.Errorf("could not append decision: %w", err)
	}

	p.l.WithFields(logrus.Fields{"MessageId": decision.MessageId, "Label": decision.Label}).Debug("Appended decision")
	return nil
}

func (p *Persistence) RecentDecisions(limit int) ([]*domain.DecisionRecord, error) {
	qry := `SELECT id, messageid, predicted, label, explanation, subject, snippet, createdat from decisions ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		qry += " LIMIT ?"
		args = append(args, limit)
	}

	return p.selectDecisions(qry, args...)
}

func (p *Persistence) LabeledDecisions() ([]*domain.DecisionRecord, error) {
	return p.selectDecisions(
		`SELECT id, messageid, predicted, label, explanation, subject, snippet, createdat from decisions WHERE label IN (?, ?) ORDER BY id ASC`,
		string(domain.LabelSpam),
		string(domain.LabelHam),
	)
}

func (p *Persistence) selectDecisions(qry string, args ...interface{}) ([]*domain.DecisionRecord, error) {
	dbDecisions := []struct {
		Id          int64
		MessageId   string `db:"messageid"`
		Predicted   float64
		Label       string
		Explanation string
		Subject     string
		Snippet     string
		CreatedAt   int64 `db:"createdat"`
	}{}

	err := p.db.Select(&dbDecisions, qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	decisions := []*domain.DecisionRecord{}
	for _, d := range dbDecisions {
		decisions = append(
			decisions,
			&domain.DecisionRecord{
				Id:          d.Id,
				MessageId:   d.MessageId,
				Predicted:   d.Predicted,
				Label:       domain.Label(d.Label),
				Explanation: d.Explanation,
				Subject:     d.Subject,
				Snippet:     d.Snippet,
				CreatedAt:   time.Unix(d.CreatedAt, 0),
			},
		)
	}

	return decisions, nil
}
