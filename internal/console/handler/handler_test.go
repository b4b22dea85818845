package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"verifydesk/internal/dataset"
	"verifydesk/internal/domain"
	"verifydesk/internal/ids"
	"verifydesk/pkg/platform/httputil"
	"verifydesk/pkg/testutil"
)

type ConsoleHandlerSuite struct {
	suite.Suite
	store  *dataset.Store
	router http.Handler
}

func TestConsoleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConsoleHandlerSuite))
}

func (s *ConsoleHandlerSuite) SetupSuite() {
	s.store = dataset.Build()
	r := chi.NewRouter()
	New(s.store, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *ConsoleHandlerSuite) get(path string) (int, []byte) {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, path, nil))
	return rr.Code, rr.Body.Bytes()
}

func decode[T any](s *ConsoleHandlerSuite, body []byte) T {
	var out T
	s.Require().NoError(json.Unmarshal(body, &out), string(body))
	return out
}

// Person indexes in the seed list.
var (
	alexander = ids.Generate("inq", 100)
	lars      = ids.Generate("inq", 103)
	chloe     = ids.Generate("inq", 106)
)

func (s *ConsoleHandlerSuite) TestAccounts() {
	s.Run("lists every account", func() {
		code, body := s.get("/accounts")
		s.Equal(http.StatusOK, code)
		list := decode[httputil.ListResponse[domain.Account]](s, body)
		s.Equal(len(s.store.Accounts()), list.Total)
	})

	s.Run("searches by name", func() {
		_, body := s.get("/accounts?q=lars")
		list := decode[httputil.ListResponse[domain.Account]](s, body)
		s.Require().Equal(1, list.Total)
		s.Equal("Lars Eriksson", list.Items[0].Name)
	})

	s.Run("overview bundles related records", func() {
		code, body := s.get("/accounts/" + ids.Generate("act", 103))
		s.Equal(http.StatusOK, code)
		overview := decode[dataset.AccountOverview](s, body)
		s.Len(overview.Inquiries, 1)
		s.Len(overview.Reports, 3)
	})

	s.Run("unknown account is 404", func() {
		code, _ := s.get("/accounts/act_missing")
		s.Equal(http.StatusNotFound, code)
	})
}

func (s *ConsoleHandlerSuite) TestInquiries() {
	s.Run("filters by status", func() {
		_, body := s.get("/inquiries?status=needs_review")
		list := decode[httputil.ListResponse[domain.Inquiry]](s, body)
		s.NotZero(list.Total)
		for _, inq := range list.Items {
			s.Equal(domain.InquiryStatusNeedsReview, inq.Status)
		}
	})

	s.Run("no criteria lists everything", func() {
		_, body := s.get("/inquiries")
		list := decode[httputil.ListResponse[domain.Inquiry]](s, body)
		s.Equal(len(s.store.Inquiries()), list.Total)
	})

	s.Run("malformed dates are bad requests", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/inquiries?created_from=yesterday&created_to=today", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("gets one inquiry", func() {
		code, body := s.get("/inquiries/" + alexander)
		s.Equal(http.StatusOK, code)
		s.Equal(alexander, decode[domain.Inquiry](s, body).ID)
	})

	s.Run("tag picker lists distinct tags", func() {
		code, body := s.get("/inquiries/tags")
		s.Equal(http.StatusOK, code)
		list := decode[httputil.ListResponse[string]](s, body)
		s.NotZero(list.Total)
	})
}

func (s *ConsoleHandlerSuite) TestInquirySubResources() {
	s.Run("verifications and reports", func() {
		_, body := s.get("/inquiries/" + lars + "/verifications")
		s.Equal(2, decode[httputil.ListResponse[domain.Verification]](s, body).Total)

		_, body = s.get("/inquiries/" + lars + "/reports")
		s.Equal(2, decode[httputil.ListResponse[domain.Report]](s, body).Total)
	})

	s.Run("signals and risk exist once the inquiry started", func() {
		_, body := s.get("/inquiries/" + alexander + "/signals")
		s.NotZero(decode[httputil.ListResponse[domain.InquirySignal]](s, body).Total)

		code, body := s.get("/inquiries/" + alexander + "/behavioral-risk")
		s.Equal(http.StatusOK, code)
		s.NotEqual("null\n", string(body))
	})

	s.Run("created inquiries have nothing observed", func() {
		_, body := s.get("/inquiries/" + chloe + "/signals")
		s.Zero(decode[httputil.ListResponse[domain.InquirySignal]](s, body).Total)

		_, body = s.get("/inquiries/" + chloe + "/behavioral-risk")
		s.Equal("null\n", string(body))
	})

	s.Run("unknown inquiries yield empty lists", func() {
		code, body := s.get("/inquiries/inq_missing/events")
		s.Equal(http.StatusOK, code)
		s.JSONEq(`{"items":[],"total":0}`, string(body))
	})
}

func (s *ConsoleHandlerSuite) TestVerificationsAndReports() {
	s.Run("verifications filter by type", func() {
		_, body := s.get("/verifications?type=selfie")
		list := decode[httputil.ListResponse[domain.Verification]](s, body)
		s.NotZero(list.Total)
		for _, v := range list.Items {
			s.Equal(domain.VerificationTypeSelfie, v.Type)
		}
	})

	s.Run("reports filter by template", func() {
		_, body := s.get("/reports?template=Manual+Watchlist+Screening")
		list := decode[httputil.ListResponse[domain.Report]](s, body)
		s.Require().Equal(1, list.Total)
		s.Equal(domain.ReportCreatedByManual, list.Items[0].CreatedBy)

		code, _ := s.get("/reports/" + list.Items[0].ID)
		s.Equal(http.StatusOK, code)
	})

	s.Run("unknown ids are 404", func() {
		code, _ := s.get("/verifications/ver_missing")
		s.Equal(http.StatusNotFound, code)
		code, _ = s.get("/reports/rep_missing")
		s.Equal(http.StatusNotFound, code)
	})
}
