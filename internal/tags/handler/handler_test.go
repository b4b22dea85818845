package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"verifydesk/internal/tags"
	"verifydesk/internal/tags/handler/mocks"
	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/tags-mocks.go -package=mocks Service

const adminToken = "s3cret"

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), adminToken).Register(r)
	return r, svc
}

func TestListTags(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().List(gomock.Any()).Return([]tags.Tag{{Name: "vip", Count: 4}})

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/tags", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `{"items":[{"name":"vip","count":4}],"total":1}`, rr.Body.String())
}

func TestRenameTag(t *testing.T) {
	t.Run("renames", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().Rename(gomock.Any(), "vip", "priority").Return(tags.Tag{Name: "priority", Count: 4}, nil)

		req := testutil.WithAdminToken(testutil.NewJSONRequest(t, http.MethodPut, "/tags/vip", map[string]string{"name": "priority"}), adminToken)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.JSONEq(t, `{"name":"priority","count":4}`, rr.Body.String())
	})

	t.Run("conflict", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.EXPECT().Rename(gomock.Any(), "vip", "fraud").
			Return(tags.Tag{}, dErrors.New(dErrors.CodeConflict, "a tag with that name already exists"))

		req := testutil.WithAdminToken(testutil.NewJSONRequest(t, http.MethodPut, "/tags/vip", map[string]string{"name": "fraud"}), adminToken)
		testutil.AssertStatusAndError(t, testutil.DoRequest(router, req), http.StatusConflict, "conflict")
	})

	t.Run("requires the admin token", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := testutil.NewJSONRequest(t, http.MethodPut, "/tags/vip", map[string]string{"name": "x"})
		testutil.AssertStatusAndError(t, testutil.DoRequest(router, req), http.StatusUnauthorized, "unauthorized")
	})
}

func TestDeleteTag(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "vip").Return(nil)

	req := testutil.WithAdminToken(testutil.NewJSONRequest(t, http.MethodDelete, "/tags/vip", nil), adminToken)
	testutil.AssertStatus(t, testutil.DoRequest(router, req), http.StatusNoContent)
}
