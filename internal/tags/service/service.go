package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"verifydesk/internal/tags"
	"verifydesk/pkg/attrs"
	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/platform/audit"
	"verifydesk/pkg/platform/middleware/metadata"
	"verifydesk/pkg/platform/sentinel"
	"verifydesk/pkg/requestcontext"
)

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service edits the tag catalog and records each change.
type Service struct {
	catalog        *tags.Catalog
	logger         *slog.Logger
	auditPublisher AuditPublisher
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func New(catalog *tags.Catalog, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("tag catalog is required")
	}
	s := &Service{catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) List(ctx context.Context) []tags.Tag {
	return s.catalog.List()
}

func (s *Service) Rename(ctx context.Context, oldName, newName string) (tags.Tag, error) {
	if strings.TrimSpace(newName) == "" {
		return tags.Tag{}, dErrors.New(dErrors.CodeValidation, "new tag name is required")
	}
	tag, err := s.catalog.Rename(oldName, newName)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return tags.Tag{}, dErrors.New(dErrors.CodeNotFound, "tag not found")
		case errors.Is(err, sentinel.ErrConflict):
			return tags.Tag{}, dErrors.New(dErrors.CodeConflict, "a tag with that name already exists")
		}
		return tags.Tag{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to rename tag")
	}
	if tag.Name != oldName {
		s.logAudit(ctx, string(audit.EventTagRenamed),
			"tag", oldName,
			"reason", "renamed to "+tag.Name,
		)
	}
	return tag, nil
}

// Delete removes a tag. Deleting an unknown tag succeeds.
func (s *Service) Delete(ctx context.Context, name string) error {
	if s.catalog.Delete(name) {
		s.logAudit(ctx, string(audit.EventTagDeleted), "tag", name)
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, args...)
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		Category:  audit.AuditEvent(event).Category(),
		Timestamp: requestcontext.Now(ctx),
		Action:    event,
		Subject:   attrs.ExtractString(attributes, "tag"),
		Kind:      "tags",
		Reason:    attrs.ExtractString(attributes, "reason"),
		RequestID: requestID,
		ClientIP:  metadata.GetClientIP(ctx),
	})
}
