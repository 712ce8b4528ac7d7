// SPDX-License-Identifier: GPL-3.0-or-later
package gmailconn

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/CrawX/go-inbox-sentinel/domain"
	"github.com/CrawX/go-inbox-sentinel/log"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	userId         = "me"
	historyPageMax = 100
)

// Connection implements domain.MailService against the Gmail REST API.
type Connection struct {
	svc *gmail.Service

	// label name -> id, filled lazily by EnsureLabel
	labelIds map[string]string

	l *logrus.Logger
}

func NewConnection(credentialsFile, tokenFile string) (*Connection, error) {
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("could not read credentials file: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(credentials, gmail.GmailModifyScope)
	if err != nil {
		return nil, fmt.Errorf("could not parse credentials file: %w", err)
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("no usable cached token, run the auth command first: %w", err)
	}

	ctx := context.Background()
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("could not create gmail service: %w", err)
	}

	l := log.Logger(log.LOG_GMAIL)
	l.Info("Connected")

	return &Connection{
		svc:      svc,
		labelIds: map[string]string{},
		l:        l,
	}, nil
}

func (c *Connection) ListRecentIds(max int64) ([]string, error) {
	resp, err := c.svc.Users.Messages.List(userId).MaxResults(max).Do()
	if err != nil {
		return nil, fmt.Errorf("could not list messages: %w", err)
	}

	ids := []string{}
	for _, m := range resp.Messages {
		ids = append(ids, m.Id)
	}

	c.l.WithField("count", len(ids)).Debug("Listed recent messages")
	return ids, nil
}

func (c *Connection) Metadata(id string) (*domain.MessageRecord, error) {
	msg, err := c.svc.Users.Messages.Get(userId, id).
		Format("metadata").
		MetadataHeaders("From", "Subject").
		Do()
	if err != nil {
		return nil, fmt.Errorf("could not fetch message %s: %w", id, err)
	}

	return &domain.MessageRecord{
		Id:       msg.Id,
		ThreadId: msg.ThreadId,
		From:     header(msg, "From"),
		Subject:  header(msg, "Subject"),
		Snippet:  msg.Snippet,
		Position: domain.Cursor(msg.HistoryId),
	}, nil
}

func (c *Connection) HistoryPage(start domain.Cursor, pageToken string) (*domain.HistoryPage, error) {
	call := c.svc.Users.History.List(userId).
		StartHistoryId(uint64(start)).
		HistoryTypes("messageAdded").
		LabelId(domain.InboxFolder).
		MaxResults(historyPageMax)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		// Gmail reports an expired or unknown startHistoryId as 404 (or 400
		// for malformed ones), both mean the cursor cannot be resumed.
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == 404 || apiErr.Code == 400) {
			return nil, fmt.Errorf("history list rejected position %d: %w", start, domain.ErrInvalidCursor)
		}
		return nil, fmt.Errorf("could not list history: %w", err)
	}

	page := &domain.HistoryPage{NextToken: resp.NextPageToken}
	for _, h := range resp.History {
		for _, added := range h.MessagesAdded {
			if added.Message == nil {
				continue
			}
			page.Events = append(page.Events, domain.MutationEvent{
				Position:  domain.Cursor(h.Id),
				MessageId: added.Message.Id,
				InInbox:   hasLabel(added.Message.LabelIds, domain.InboxFolder),
			})
		}
	}

	return page, nil
}

func (c *Connection) CurrentCursor() (domain.Cursor, error) {
	profile, err := c.svc.Users.GetProfile(userId).Do()
	if err != nil {
		return 0, fmt.Errorf("could not fetch profile: %w", err)
	}

	return domain.Cursor(profile.HistoryId), nil
}

func (c *Connection) EnsureLabel(name string) (string, error) {
	if id, ok := c.labelIds[name]; ok {
		return id, nil
	}

	resp, err := c.svc.Users.Labels.List(userId).Do()
	if err != nil {
		return "", fmt.Errorf("could not list labels: %w", err)
	}
	for _, label := range resp.Labels {
		if label.Name == name {
			c.labelIds[name] = label.Id
			return label.Id, nil
		}
	}

	created, err := c.svc.Users.Labels.Create(userId, &gmail.Label{
		Name:                  name,
		LabelListVisibility:   "labelShow",
		MessageListVisibility: "show",
	}).Do()
	if err != nil {
		return "", fmt.Errorf("could not create label %s: %w", name, err)
	}

	c.l.WithFields(logrus.Fields{"name": name, "id": created.Id}).Info("Created label")
	c.labelIds[name] = created.Id
	return created.Id, nil
}

func (c *Connection) ModifyLabels(id string, add []string, remove []string) error {
	_, err := c.svc.Users.Messages.Modify(userId, id, &gmail.ModifyMessageRequest{
		AddLabelIds:    add,
		RemoveLabelIds: remove,
	}).Do()
	if err != nil {
		return fmt.Errorf("could not modify labels on %s: %w", id, err)
	}

	c.l.WithFields(logrus.Fields{"id": id, "add": add, "remove": remove}).Debug("Modified labels")
	return nil
}

func header(msg *gmail.Message, name string) string {
	if msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

func hasLabel(labelIds []string, label string) bool {
	for _, l := range labelIds {
		if l == label {
			return true
		}
	}
	return false
}
