package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/pkg/event"
	"github.com/shashiranjanraj/venuebook/pkg/logger"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

const (
	messageSort = "time desc"
	// MessagePageSize applies to every message list, public or admin.
	MessagePageSize = 5
)

type MessageStore interface {
	FindByID(ctx context.Context, id uint) (models.Message, error)
	Create(ctx context.Context, m *models.Message) error
	Resubmit(ctx context.Context, id uint, content string) error
	UpdateState(ctx context.Context, id uint, t models.Transition) error
	Delete(ctx context.Context, id uint) (int64, error)
	PageByState(ctx context.Context, state models.State, req orm.PageRequest) (orm.Page[models.Message], error)
	PageByUser(ctx context.Context, userID string, req orm.PageRequest) (orm.Page[models.Message], error)
}

// UserDirectory resolves message authors for display.
type UserDirectory interface {
	FindByUserIDs(ctx context.Context, ids []string) (map[string]models.User, error)
}

type MessageService struct {
	messages MessageStore
	users    UserDirectory
	now      func() time.Time
}

func NewMessageService(messages MessageStore, users UserDirectory) *MessageService {
	return &MessageService{messages: messages, users: users, now: time.Now}
}

// Send posts content as userID. New messages wait for review.
func (s *MessageService) Send(ctx context.Context, userID, content string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, invalid("message content is required")
	}
	m := models.Message{
		UserID:  userID,
		Content: content,
		Time:    s.now(),
		State:   models.StatePending,
	}
	if err := s.messages.Create(ctx, &m); err != nil {
		return models.Message{}, fmt.Errorf("create message: %w", err)
	}
	return m, nil
}

// Modify replaces the content of userID's message id and sends it back to
// review whatever its current state.
func (s *MessageService) Modify(ctx context.Context, userID string, id uint, content string) error {
	if strings.TrimSpace(content) == "" {
		return invalid("message content is required")
	}
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := transition(s.messages.Resubmit(ctx, id, content), "message", id); err != nil {
		return err
	}
	event.Fire(ctx, event.Transitioned, event.Transition{Entity: "message", ID: id, Name: models.Resubmit.Name, To: models.Resubmit.To.String()})
	return nil
}

// DeleteOwned removes userID's message id.
func (s *MessageService) DeleteOwned(ctx context.Context, userID string, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

// Delete removes message id regardless of author.
func (s *MessageService) Delete(ctx context.Context, id uint) error {
	n, err := s.messages.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete message %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *MessageService) Confirm(ctx context.Context, id uint) error {
	return s.apply(ctx, id, models.Confirm)
}

func (s *MessageService) Reject(ctx context.Context, id uint) error {
	return s.apply(ctx, id, models.Reject)
}

func (s *MessageService) apply(ctx context.Context, id uint, t models.Transition) error {
	if err := transition(s.messages.UpdateState(ctx, id, t), "message", id); err != nil {
		return err
	}
	event.Fire(ctx, event.Transitioned, event.Transition{Entity: "message", ID: id, Name: t.Name, To: t.To.String()})
	logger.WithCtx(ctx).Info("message transition", "message_id", id, "transition", t.Name, "to", t.To.String())
	return nil
}

// Approved pages through the public board.
func (s *MessageService) Approved(ctx context.Context, page int) (orm.Page[models.MessageVo], error) {
	return s.pageByState(ctx, models.StateApproved, page)
}

// Pending pages through messages awaiting review.
func (s *MessageService) Pending(ctx context.Context, page int) (orm.Page[models.MessageVo], error) {
	return s.pageByState(ctx, models.StatePending, page)
}

// ByUser pages through userID's messages in every state.
func (s *MessageService) ByUser(ctx context.Context, userID string, page int) (orm.Page[models.MessageVo], error) {
	req, err := pageRequest(page, MessagePageSize, messageSort)
	if err != nil {
		return orm.Page[models.MessageVo]{}, err
	}
	p, err := s.messages.PageByUser(ctx, userID, req)
	if err != nil {
		return orm.Page[models.MessageVo]{}, fmt.Errorf("page messages of %q: %w", userID, err)
	}
	return s.project(ctx, p)
}

func (s *MessageService) pageByState(ctx context.Context, state models.State, page int) (orm.Page[models.MessageVo], error) {
	req, err := pageRequest(page, MessagePageSize, messageSort)
	if err != nil {
		return orm.Page[models.MessageVo]{}, err
	}
	p, err := s.messages.PageByState(ctx, state, req)
	if err != nil {
		return orm.Page[models.MessageVo]{}, fmt.Errorf("page %s messages: %w", state, err)
	}
	return s.project(ctx, p)
}

func (s *MessageService) owned(ctx context.Context, userID string, id uint) (models.Message, error) {
	m, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return models.Message{}, lookup(err, "message", id)
	}
	if m.UserID != userID {
		return models.Message{}, fmt.Errorf("message %d of %q: %w", id, userID, ErrForbidden)
	}
	return m, nil
}

func (s *MessageService) project(ctx context.Context, p orm.Page[models.Message]) (orm.Page[models.MessageVo], error) {
	users, err := s.users.FindByUserIDs(ctx, models.UserIDs(p.Items))
	if err != nil {
		return orm.Page[models.MessageVo]{}, fmt.Errorf("message authors: %w", err)
	}
	return orm.Map(p, func(messages []models.Message) []models.MessageVo {
		return models.ToMessageVos(messages, users)
	}), nil
}
