package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{"validation", apperr.NewValidation("order", "date"), http.StatusBadRequest, TypeValidation},
		{"reference", &apperr.ReferenceError{Kind: "customer", ID: 999}, http.StatusBadRequest, TypeInvalidReference},
		{"not found", fmt.Errorf("load: %w", &apperr.NotFoundError{Resource: "order", ID: 4}), http.StatusNotFound, TypeNotFound},
		{"in use", &apperr.InUseError{Resource: "customer", ID: 1, References: 2}, http.StatusConflict, TypeConflict},
		{"persistence", apperr.Persistence("orders.create", errors.New("disk full")), http.StatusInternalServerError, TypeInternal},
		{"unauthenticated", apperr.ErrUnauthenticated, http.StatusUnauthorized, TypeUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			problem, ok := MapDomainError(tc.err)
			require.True(t, ok)
			assert.Equal(t, tc.status, problem.Status)
			assert.Equal(t, tc.typ, problem.Type)
			assert.Equal(t, tc.status, HTTPStatusFromError(tc.err))
		})
	}
}

func TestMapDomainError_ReferenceExtensions(t *testing.T) {
	problem, ok := MapDomainError(&apperr.ReferenceError{Kind: "product", ID: 7})
	require.True(t, ok)
	assert.Equal(t, "product", problem.Extensions["kind"])
	assert.Equal(t, int64(7), problem.Extensions["id"])
}

func TestMapDomainError_PersistenceHidesCause(t *testing.T) {
	problem, ok := MapDomainError(apperr.Persistence("orders.create", errors.New("password=secret")))
	require.True(t, ok)
	assert.NotContains(t, problem.Detail, "secret")
	assert.Contains(t, problem.Detail, "orders.create")
}

func TestMapDomainError_Unclassified(t *testing.T) {
	_, ok := MapDomainError(errors.New("boom"))
	assert.False(t, ok)
	_, ok = MapDomainError(nil)
	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromError(errors.New("boom")))
}

func TestRespondError_WritesProblemJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/orders/4", nil)

	RespondError(c, &apperr.NotFoundError{Resource: "order", ID: 4})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"instance":"/api/orders/4"`)
	assert.True(t, c.IsAborted())
}

func TestRespondError_UnclassifiedDoesNotLeakMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondError(c, errors.New("dial tcp 10.0.0.1:5432"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestMapDomainError_InUseExtensions(t *testing.T) {
	problem, ok := MapDomainError(&apperr.InUseError{Resource: "product", ID: 3, References: 2})
	require.True(t, ok)
	assert.Equal(t, "Conflict", problem.Title)
	assert.Equal(t, "product", problem.Extensions["resourceType"])
	assert.Equal(t, int64(3), problem.Extensions["identifier"])
	assert.Equal(t, int64(2), problem.Extensions["references"])
}

func TestRespondError_PassesThroughWrappedProblem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/orders", nil)

	RespondError(c, fmt.Errorf("decode: %w", ErrBadRequest.WithDetail("bad json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"/problems/bad-request"`)
	assert.Contains(t, w.Body.String(), "bad json")
}

func TestWithExtension_LeavesTemplateUntouched(t *testing.T) {
	_ = ErrBadRequest.WithExtension("parameter", "id")
	assert.Nil(t, ErrBadRequest.Extensions)
}
