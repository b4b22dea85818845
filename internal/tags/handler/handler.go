package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"verifydesk/internal/tags"
	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/platform/httputil"
	"verifydesk/pkg/platform/middleware/admin"
	"verifydesk/pkg/requestcontext"
)

// Service defines the tag operations the settings page uses.
type Service interface {
	List(ctx context.Context) []tags.Tag
	Rename(ctx context.Context, oldName, newName string) (tags.Tag, error)
	Delete(ctx context.Context, name string) error
}

type Handler struct {
	service    Service
	logger     *slog.Logger
	adminToken string
}

func New(service Service, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{service: service, logger: logger, adminToken: adminToken}
}

type renameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/tags", h.handleList)
	r.Group(func(r chi.Router) {
		r.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		r.Put("/tags/{name}", h.handleRename)
		r.Delete("/tags/{name}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.NewList(h.service.List(r.Context())))
}

func (h *Handler) handleRename(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[renameRequest](w, r, h.logger)
	if !ok {
		return
	}
	tag, err := h.service.Rename(r.Context(), chi.URLParam(r, "name"), req.Name)
	if err != nil {
		h.writeError(w, r, "failed to rename tag", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tag)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, r, "failed to delete tag", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if h.logger != nil && dErrors.CodeOf(err) == dErrors.CodeInternal {
		ctx := r.Context()
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
