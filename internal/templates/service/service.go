package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"verifydesk/internal/templates"
	"verifydesk/internal/templates/metrics"
	"verifydesk/internal/templates/models"
	"verifydesk/pkg/attrs"
	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/platform/audit"
	"verifydesk/pkg/platform/middleware/metadata"
	"verifydesk/pkg/requestcontext"
)

const tracerName = "verifydesk/templates"

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service validates template changes before they reach the store and records
// who changed what.
type Service struct {
	store          *templates.Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
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

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

func New(store *templates.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("template store is required")
	}
	s := &Service{store: store, tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) ListInquiryTemplates(ctx context.Context) []models.InquiryTemplate {
	return s.store.Inquiries().List()
}

func (s *Service) GetInquiryTemplate(ctx context.Context, id string) (models.InquiryTemplate, error) {
	return get(s.store.Inquiries(), id)
}

func (s *Service) CreateInquiryTemplate(ctx context.Context, in models.InquiryTemplateInput) (models.InquiryTemplate, error) {
	return create(ctx, s, s.store.Inquiries(), normalizeInquiryInput(in), validateInquiry)
}

func (s *Service) UpdateInquiryTemplate(ctx context.Context, id string, patch models.InquiryTemplatePatch) (models.InquiryTemplate, error) {
	return update(ctx, s, s.store.Inquiries(), id, patch, normalizeInquiryPatch, validateInquiry)
}

func (s *Service) ListVerificationTemplates(ctx context.Context) []models.VerificationTemplate {
	return s.store.Verifications().List()
}

func (s *Service) GetVerificationTemplate(ctx context.Context, id string) (models.VerificationTemplate, error) {
	return get(s.store.Verifications(), id)
}

func (s *Service) CreateVerificationTemplate(ctx context.Context, in models.VerificationTemplateInput) (models.VerificationTemplate, error) {
	return create(ctx, s, s.store.Verifications(), normalizeVerificationInput(in), validateVerification)
}

func (s *Service) UpdateVerificationTemplate(ctx context.Context, id string, patch models.VerificationTemplatePatch) (models.VerificationTemplate, error) {
	return update(ctx, s, s.store.Verifications(), id, patch, normalizeVerificationPatch, validateVerification)
}

func (s *Service) ListReportTemplates(ctx context.Context) []models.ReportTemplate {
	return s.store.Reports().List()
}

func (s *Service) GetReportTemplate(ctx context.Context, id string) (models.ReportTemplate, error) {
	return get(s.store.Reports(), id)
}

func (s *Service) CreateReportTemplate(ctx context.Context, in models.ReportTemplateInput) (models.ReportTemplate, error) {
	return create(ctx, s, s.store.Reports(), normalizeReportInput(in), validateReport)
}

func (s *Service) UpdateReportTemplate(ctx context.Context, id string, patch models.ReportTemplatePatch) (models.ReportTemplate, error) {
	return update(ctx, s, s.store.Reports(), id, patch, normalizeReportPatch, validateReport)
}

// DeleteTemplate removes a template. Deleting an unknown id succeeds.
func (s *Service) DeleteTemplate(ctx context.Context, kind models.Kind, id string) error {
	if !kind.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "unknown template kind: "+string(kind))
	}
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "templates.delete", trace.WithAttributes(
		attribute.String("template.kind", string(kind)),
		attribute.String("template.id", id),
	))
	defer span.End()

	removed := s.store.Delete(kind, id)
	span.SetAttributes(attribute.Bool("template.removed", removed))
	s.metrics.ObserveMutation(string(kind), "delete", start)
	if !removed {
		return nil
	}
	s.metrics.IncrementDeleted(string(kind))
	s.logAudit(ctx, string(audit.EventTemplateDeleted),
		"kind", string(kind),
		"template_id", id,
	)
	return nil
}

func (s *Service) Presets(ctx context.Context) models.PresetCatalog {
	return templates.Presets()
}

func (s *Service) CheckCatalog(ctx context.Context) models.CheckCatalog {
	return templates.Checks()
}

// CreateFromPreset creates a draft template of kind from the preset's
// defaults. The result is the created template of the matching type.
func (s *Service) CreateFromPreset(ctx context.Context, kind models.Kind, presetID string) (any, error) {
	notFound := dErrors.New(dErrors.CodeNotFound, "preset not found")
	switch kind {
	case models.KindInquiry:
		p, ok := templates.InquiryPreset(presetID)
		if !ok {
			return nil, notFound
		}
		p.Defaults.Status = models.TemplateStatusDraft
		return s.CreateInquiryTemplate(ctx, p.Defaults)
	case models.KindVerification:
		p, ok := templates.VerificationPreset(presetID)
		if !ok {
			return nil, notFound
		}
		p.Defaults.Status = models.TemplateStatusDraft
		return s.CreateVerificationTemplate(ctx, p.Defaults)
	case models.KindReport:
		p, ok := templates.ReportPreset(presetID)
		if !ok {
			return nil, notFound
		}
		p.Defaults.Status = models.TemplateStatusDraft
		return s.CreateReportTemplate(ctx, p.Defaults)
	}
	return nil, dErrors.New(dErrors.CodeBadRequest, "unknown template kind: "+string(kind))
}

func get[T models.Record[T], In templates.Builder[T], P templates.Patcher[T]](c *templates.Collection[T, In, P], id string) (T, error) {
	rec, ok := c.Get(id)
	if !ok {
		return rec, notFound(c.Kind())
	}
	return rec, nil
}

// create validates the record in would build before the store assigns an id.
func create[T models.Record[T], In templates.Builder[T], P templates.Patcher[T]](
	ctx context.Context, s *Service, c *templates.Collection[T, In, P], in In, validate func(T) error,
) (T, error) {
	kind := string(c.Kind())
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "templates.create", trace.WithAttributes(attribute.String("template.kind", kind)))
	defer span.End()

	var zero T
	if err := validate(in.Build("", time.Time{})); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return zero, err
	}

	rec := c.Create(in)
	span.SetAttributes(attribute.String("template.id", rec.RecordID()))
	s.metrics.ObserveMutation(kind, "create", start)
	s.metrics.IncrementCreated(kind)
	s.logAudit(ctx, string(audit.EventTemplateCreated),
		"kind", kind,
		"template_id", rec.RecordID(),
		"status", string(rec.RecordStatus()),
	)
	if rec.RecordStatus() == models.TemplateStatusActive {
		s.metrics.IncrementPublished(kind)
		s.logAudit(ctx, string(audit.EventTemplatePublished),
			"kind", kind,
			"template_id", rec.RecordID(),
		)
	}
	return rec, nil
}

// update normalizes patch against the stored record, then checks the merged
// result and the status transition before writing.
func update[T models.Record[T], In templates.Builder[T], P templates.Patcher[T]](
	ctx context.Context, s *Service, c *templates.Collection[T, In, P], id string, patch P,
	normalize func(T, P) P, validate func(T) error,
) (T, error) {
	kind := string(c.Kind())
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "templates.update", trace.WithAttributes(
		attribute.String("template.kind", kind),
		attribute.String("template.id", id),
	))
	defer span.End()

	var zero T
	fail := func(err error, msg string) (T, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)
		return zero, err
	}

	current, ok := c.Get(id)
	if !ok {
		return fail(notFound(c.Kind()), "template not found")
	}
	patch = normalize(current, patch)
	merged := patch.ApplyTo(current)
	if err := validate(merged); err != nil {
		return fail(err, "validation failed")
	}
	from, to := current.RecordStatus(), merged.RecordStatus()
	if !from.CanTransitionTo(to) {
		return fail(dErrors.New(dErrors.CodeConflict,
			"cannot move template from "+string(from)+" to "+string(to)), "invalid status transition")
	}

	rec, ok := c.Update(id, patch)
	if !ok {
		return fail(notFound(c.Kind()), "template not found")
	}
	s.metrics.ObserveMutation(kind, "update", start)
	s.metrics.IncrementUpdated(kind)

	event := audit.EventTemplateUpdated
	switch {
	case from != to && to == models.TemplateStatusActive:
		event = audit.EventTemplatePublished
		s.metrics.IncrementPublished(kind)
	case from != to && to == models.TemplateStatusArchived:
		event = audit.EventTemplateArchived
	}
	s.logAudit(ctx, string(event),
		"kind", kind,
		"template_id", id,
		"status", string(to),
	)
	return rec, nil
}

func notFound(kind models.Kind) error {
	return dErrors.New(dErrors.CodeNotFound, kindNoun(kind)+" not found")
}

func kindNoun(kind models.Kind) string {
	switch kind {
	case models.KindInquiry:
		return "inquiry template"
	case models.KindVerification:
		return "verification template"
	case models.KindReport:
		return "report template"
	}
	return "template"
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
		Subject:   attrs.ExtractFirst(attributes, "template_id", "preset_id"),
		Kind:      attrs.ExtractString(attributes, "kind"),
		RequestID: requestID,
		ClientIP:  metadata.GetClientIP(ctx),
	})
}
