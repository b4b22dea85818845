package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/platform/audit"
	"verifydesk/pkg/platform/httputil"
	"verifydesk/pkg/platform/middleware/admin"
	"verifydesk/pkg/requestcontext"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Reader lists retained audit events, most recent first.
type Reader interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

type Handler struct {
	reader     Reader
	logger     *slog.Logger
	adminToken string
}

func New(reader Reader, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{reader: reader, logger: logger, adminToken: adminToken}
}

// Register registers the audit trail route with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		r.Get("/audit", h.handleList)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be between 1 and "+strconv.Itoa(maxLimit)))
			return
		}
		limit = n
	}

	events, err := h.reader.ListRecent(ctx, limit)
	if err != nil {
		if h.logger != nil {
			h.logger.ErrorContext(ctx, "failed to list audit events",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.NewList(events))
}
