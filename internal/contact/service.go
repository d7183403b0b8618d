// AngelaMos | 2026
// service.go

package contact

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tkprod/portfolio-api/internal/core"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	notifyTimeout = 30 * time.Second
)

// RecipientResolver returns the address that receives contact
// notifications.
type RecipientResolver interface {
	ContactEmail(ctx context.Context) (string, error)
}

type Page struct {
	Messages   []Message
	Pagination core.Pagination
}

type Service struct {
	repo         Repository
	notifier     Notifier
	recipients   RecipientResolver
	defaultEmail string
	dispatch     func(func())
}

func NewService(
	repo Repository,
	notifier Notifier,
	recipients RecipientResolver,
	defaultEmail string,
) *Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		repo:         repo,
		notifier:     notifier,
		recipients:   recipients,
		defaultEmail: defaultEmail,
		dispatch:     func(fn func()) { go fn() },
	}
}

// Submit stores the message and notifies the site owner in the
// background. Notification failures never fail the submission.
func (s *Service) Submit(
	ctx context.Context,
	req CreateMessageRequest,
) (*Message, error) {
	msg := &Message{
		ID:    uuid.New().String(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Body:  req.Message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	notifyCtx := context.WithoutCancel(ctx)
	sent := *msg
	s.dispatch(func() {
		s.notify(notifyCtx, &sent)
	})

	return msg, nil
}

func (s *Service) notify(ctx context.Context, msg *Message) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	recipient := s.recipient(ctx)

	if err := s.notifier.Notify(ctx, msg, recipient); err != nil {
		slog.WarnContext(ctx, "contact notification failed",
			"contact_id", msg.ID,
			"error", err,
		)
	}
}

func (s *Service) recipient(ctx context.Context) string {
	if s.recipients == nil {
		return s.defaultEmail
	}

	email, err := s.recipients.ContactEmail(ctx)
	if err != nil || email == "" {
		if err != nil {
			slog.WarnContext(ctx, "resolve contact email, using default",
				"error", err,
			)
		}
		return s.defaultEmail
	}

	return email
}

func (s *Service) List(
	ctx context.Context,
	page, limit int,
	read *bool,
) (*Page, error) {
	page, limit = core.NormalizePage(page, limit, DefaultLimit, MaxLimit)

	messages, total, err := s.repo.List(ctx, ListParams{
		Page:  page,
		Limit: limit,
		Read:  read,
	})
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []Message{}
	}

	return &Page{
		Messages:   messages,
		Pagination: core.NewPagination(total, page, limit),
	}, nil
}

// SetRead updates the read flag of a message. A nil read only checks that
// the message exists.
func (s *Service) SetRead(ctx context.Context, id string, read *bool) error {
	return s.repo.SetRead(ctx, id, read)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx, nil)
}

func (s *Service) CountUnread(ctx context.Context) (int, error) {
	unread := false
	return s.repo.Count(ctx, &unread)
}

// ParseReadFilter accepts only "true" and "false"; anything else means no
// filter.
func ParseReadFilter(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
