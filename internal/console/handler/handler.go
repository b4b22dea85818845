// Package handler serves the read-only dashboard views over the generated
// dataset: accounts, inquiries and their sub-records, verifications, and
// reports.
package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"verifydesk/internal/dataset"
	"verifydesk/internal/domain"
	"verifydesk/internal/filter"
	"verifydesk/internal/tags"
	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/platform/httputil"
	"verifydesk/pkg/requestcontext"
)

// Store is the dataset surface the console reads.
type Store interface {
	Accounts() []domain.Account
	Inquiries() []domain.Inquiry
	Verifications() []domain.Verification
	Reports() []domain.Report

	Inquiry(id string) (domain.Inquiry, bool)
	Verification(id string) (domain.Verification, bool)
	Report(id string) (domain.Report, bool)
	AccountOverview(id string) (dataset.AccountOverview, bool)

	VerificationsForInquiry(inquiryID string) []domain.Verification
	ReportsForInquiry(inquiryID string) []domain.Report
	SessionsForInquiry(inquiryID string) []domain.Session
	EventsForInquiry(inquiryID string) []domain.Event
	SignalsForInquiry(inquiryID string) []domain.InquirySignal
	BehavioralRiskForInquiry(inquiryID string) *domain.BehavioralRisk
}

type Handler struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register registers the console routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/accounts", h.handleListAccounts)
	r.Get("/accounts/{id}", h.handleGetAccount)

	r.Get("/inquiries", h.handleListInquiries)
	r.Get("/inquiries/tags", h.handleInquiryTags)
	r.Route("/inquiries/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetInquiry)
		r.Get("/verifications", inquiryList(h.store.VerificationsForInquiry))
		r.Get("/reports", inquiryList(h.store.ReportsForInquiry))
		r.Get("/sessions", inquiryList(h.store.SessionsForInquiry))
		r.Get("/events", inquiryList(h.store.EventsForInquiry))
		r.Get("/signals", inquiryList(h.store.SignalsForInquiry))
		r.Get("/behavioral-risk", h.handleBehavioralRisk)
	})

	r.Get("/verifications", h.handleListVerifications)
	r.Get("/verifications/{id}", h.handleGetVerification)

	r.Get("/reports", h.handleListReports)
	r.Get("/reports/{id}", h.handleGetReport)
}

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	accounts := filter.Search(h.store.Accounts(), q.Get("q"))
	if status := q.Get("status"); status != "" {
		accounts = slices.DeleteFunc(accounts, func(a domain.Account) bool { return string(a.Status) != status })
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.NewList(accounts))
}

func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	overview, ok := h.store.AccountOverview(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "account not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handler) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.criteria(w, r)
	if !ok {
		return
	}
	inquiries := filter.Inquiries(h.store.Inquiries(), criteria)
	inquiries = filter.Search(inquiries, r.URL.Query().Get("q"))
	httputil.WriteJSON(w, http.StatusOK, httputil.NewList(inquiries))
}

func (h *Handler) handleInquiryTags(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.NewList(tags.Distinct(h.store.Inquiries())))
}

func (h *Handler) handleGetInquiry(w http.ResponseWriter, r *http.Request) {
	inq, ok := h.store.Inquiry(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "inquiry not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inq)
}

// inquiryList serves a collection hanging off an inquiry. Unknown inquiries
// yield an empty list, like the store lookups they wrap.
func inquiryList[T any](lookup func(inquiryID string) []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, httputil.NewList(lookup(chi.URLParam(r, "id"))))
	}
}

// handleBehavioralRisk answers null for inquiries with nothing observed.
func (h *Handler) handleBehavioralRisk(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.store.BehavioralRiskForInquiry(chi.URLParam(r, "id")))
}

func (h *Handler) handleListVerifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, vt := q.Get("status"), q.Get("type")
	verifications := slices.DeleteFunc(h.store.Verifications(), func(v domain.Verification) bool {
		return (status != "" && string(v.Status) != status) || (vt != "" && string(v.Type) != vt)
	})
	verifications = filter.Search(verifications, q.Get("q"))
	httputil.WriteJSON(w, http.StatusOK, httputil.NewList(verifications))
}

func (h *Handler) handleGetVerification(w http.ResponseWriter, r *http.Request) {
	v, ok := h.store.Verification(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "verification not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.criteria(w, r)
	if !ok {
		return
	}
	reports := filter.Apply(h.store.Reports(), criteria)
	reports = filter.Search(reports, r.URL.Query().Get("q"))
	httputil.WriteJSON(w, http.StatusOK, httputil.NewList(reports))
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.store.Report(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "report not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) criteria(w http.ResponseWriter, r *http.Request) (filter.Criteria, bool) {
	c, err := filter.FromQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, err.Error()))
		return filter.Criteria{}, false
	}
	return c, true
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	if h.logger != nil {
		ctx := r.Context()
		h.logger.DebugContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"path", r.URL.Path,
		)
	}
	httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, msg))
}
