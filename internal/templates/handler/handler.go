package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"verifydesk/internal/templates/models"
	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/platform/httputil"
	"verifydesk/pkg/platform/middleware/admin"
	"verifydesk/pkg/requestcontext"
)

// Service defines the template operations the handler exposes.
type Service interface {
	ListInquiryTemplates(ctx context.Context) []models.InquiryTemplate
	GetInquiryTemplate(ctx context.Context, id string) (models.InquiryTemplate, error)
	CreateInquiryTemplate(ctx context.Context, in models.InquiryTemplateInput) (models.InquiryTemplate, error)
	UpdateInquiryTemplate(ctx context.Context, id string, patch models.InquiryTemplatePatch) (models.InquiryTemplate, error)

	ListVerificationTemplates(ctx context.Context) []models.VerificationTemplate
	GetVerificationTemplate(ctx context.Context, id string) (models.VerificationTemplate, error)
	CreateVerificationTemplate(ctx context.Context, in models.VerificationTemplateInput) (models.VerificationTemplate, error)
	UpdateVerificationTemplate(ctx context.Context, id string, patch models.VerificationTemplatePatch) (models.VerificationTemplate, error)

	ListReportTemplates(ctx context.Context) []models.ReportTemplate
	GetReportTemplate(ctx context.Context, id string) (models.ReportTemplate, error)
	CreateReportTemplate(ctx context.Context, in models.ReportTemplateInput) (models.ReportTemplate, error)
	UpdateReportTemplate(ctx context.Context, id string, patch models.ReportTemplatePatch) (models.ReportTemplate, error)

	DeleteTemplate(ctx context.Context, kind models.Kind, id string) error
	Presets(ctx context.Context) models.PresetCatalog
	CheckCatalog(ctx context.Context) models.CheckCatalog
	CreateFromPreset(ctx context.Context, kind models.Kind, presetID string) (any, error)
}

// Handler serves the template editor endpoints.
type Handler struct {
	service    Service
	logger     *slog.Logger
	adminToken string
}

// New creates a template Handler. Mutating routes require adminToken when it
// is non-empty.
func New(service Service, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{service: service, logger: logger, adminToken: adminToken}
}

// Register registers the template routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/templates/presets", h.handleListPresets)
	r.Get("/templates/checks", h.handleCheckCatalog)
	r.Get("/templates/{kind}", h.handleList)
	r.Get("/templates/{kind}/{id}", h.handleGet)

	r.Group(func(r chi.Router) {
		r.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		r.Post("/templates/{kind}", h.handleCreate)
		r.Patch("/templates/{kind}/{id}", h.handleUpdate)
		r.Delete("/templates/{kind}/{id}", h.handleDelete)
		r.Post("/templates/{kind}/presets/{presetID}", h.handleCreateFromPreset)
	})
}

func (h *Handler) handleListPresets(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Presets(r.Context()))
}

func (h *Handler) handleCheckCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.CheckCatalog(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch kind, ok := h.kind(w, r); {
	case !ok:
		return
	case kind == models.KindInquiry:
		httputil.WriteJSON(w, http.StatusOK, httputil.NewList(h.service.ListInquiryTemplates(ctx)))
	case kind == models.KindVerification:
		httputil.WriteJSON(w, http.StatusOK, httputil.NewList(h.service.ListVerificationTemplates(ctx)))
	case kind == models.KindReport:
		httputil.WriteJSON(w, http.StatusOK, httputil.NewList(h.service.ListReportTemplates(ctx)))
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	switch kind, ok := h.kind(w, r); {
	case !ok:
		return
	case kind == models.KindInquiry:
		respond(h, w, r, http.StatusOK, func(ctx context.Context) (models.InquiryTemplate, error) {
			return h.service.GetInquiryTemplate(ctx, id)
		})
	case kind == models.KindVerification:
		respond(h, w, r, http.StatusOK, func(ctx context.Context) (models.VerificationTemplate, error) {
			return h.service.GetVerificationTemplate(ctx, id)
		})
	case kind == models.KindReport:
		respond(h, w, r, http.StatusOK, func(ctx context.Context) (models.ReportTemplate, error) {
			return h.service.GetReportTemplate(ctx, id)
		})
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	switch kind, ok := h.kind(w, r); {
	case !ok:
		return
	case kind == models.KindInquiry:
		decodeAndRespond(h, w, r, http.StatusCreated, h.service.CreateInquiryTemplate)
	case kind == models.KindVerification:
		decodeAndRespond(h, w, r, http.StatusCreated, h.service.CreateVerificationTemplate)
	case kind == models.KindReport:
		decodeAndRespond(h, w, r, http.StatusCreated, h.service.CreateReportTemplate)
	}
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	switch kind, ok := h.kind(w, r); {
	case !ok:
		return
	case kind == models.KindInquiry:
		decodeAndRespond(h, w, r, http.StatusOK, func(ctx context.Context, p models.InquiryTemplatePatch) (models.InquiryTemplate, error) {
			return h.service.UpdateInquiryTemplate(ctx, id, p)
		})
	case kind == models.KindVerification:
		decodeAndRespond(h, w, r, http.StatusOK, func(ctx context.Context, p models.VerificationTemplatePatch) (models.VerificationTemplate, error) {
			return h.service.UpdateVerificationTemplate(ctx, id, p)
		})
	case kind == models.KindReport:
		decodeAndRespond(h, w, r, http.StatusOK, func(ctx context.Context, p models.ReportTemplatePatch) (models.ReportTemplate, error) {
			return h.service.UpdateReportTemplate(ctx, id, p)
		})
	}
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteTemplate(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "failed to delete template", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateFromPreset(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	respond(h, w, r, http.StatusCreated, func(ctx context.Context) (any, error) {
		return h.service.CreateFromPreset(ctx, kind, chi.URLParam(r, "presetID"))
	})
}

// kind parses the {kind} path segment, writing a 404 when it names no
// collection.
func (h *Handler) kind(w http.ResponseWriter, r *http.Request) (models.Kind, bool) {
	kind := models.Kind(chi.URLParam(r, "kind"))
	if !kind.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown template kind: "+string(kind)))
		return "", false
	}
	return kind, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	if h.logger != nil {
		h.logger.Log(ctx, level, msg,
			"request_id", requestcontext.RequestID(ctx),
			"path", r.URL.Path,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

func respond[T any](h *Handler, w http.ResponseWriter, r *http.Request, status int, call func(context.Context) (T, error)) {
	out, err := call(r.Context())
	if err != nil {
		h.writeError(w, r, "template request failed", err)
		return
	}
	httputil.WriteJSON(w, status, out)
}

func decodeAndRespond[In, T any](h *Handler, w http.ResponseWriter, r *http.Request, status int, call func(context.Context, In) (T, error)) {
	in, ok := httputil.DecodeJSON[In](w, r, h.logger)
	if !ok {
		return
	}
	respond(h, w, r, status, func(ctx context.Context) (T, error) {
		return call(ctx, *in)
	})
}
