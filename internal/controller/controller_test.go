package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.NotFound("x"), http.StatusNotFound},
		{service.Conflict("x"), http.StatusConflict},
		{service.InvalidInput("x"), http.StatusBadRequest},
		{service.Forbidden("x"), http.StatusForbidden},
		{service.WindowClosed(model.ErrTestClosed), http.StatusUnprocessableEntity},
		{service.Unavailable("x"), http.StatusServiceUnavailable},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func serve(h gin.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, "/items/:id", h)
	req := httptest.NewRequest(method, "/items/5", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindJSON_NotBlank(t *testing.T) {
	handler := func(ctx *gin.Context) {
		var req dto.GradeEssayDTO
		if !BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusNoContent)
	}

	w := serve(handler, http.MethodPost, `{"feedback":"   "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Invalid request body", resp.Message)
	assert.Equal(t, []string{"feedback must not be blank"}, resp.Details)

	w = serve(handler, http.MethodPost, `{"feedback":"fine","awarded_points":-2}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Details[0], "awarded_points")

	w = serve(handler, http.MethodPost, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(handler, http.MethodPost, `{"feedback":"fine","awarded_points":3}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestParseIDParam(t *testing.T) {
	var got uint
	handler := func(ctx *gin.Context) {
		id, ok := ParseIDParam(ctx, "id")
		if !ok {
			return
		}
		got = id
		ctx.Status(http.StatusNoContent)
	}
	w := serve(handler, http.MethodGet, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(5), got)

	r := gin.New()
	r.GET("/items/:id", handler)
	for _, bad := range []string{"0", "abc", "-1"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestRespondError(t *testing.T) {
	w := serve(func(ctx *gin.Context) {
		RespondError(ctx, service.Conflict("already submitted"), "test")
	}, http.MethodGet, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "already submitted", resp.Message)
	assert.Equal(t, []string{"conflict"}, resp.Details)

	w = serve(func(ctx *gin.Context) {
		RespondError(ctx, errors.New("pq: connection refused"), "test")
	}, http.MethodGet, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeError(t, w).Message)
}

func TestCallerRequiresAuthentication(t *testing.T) {
	w := serve(func(ctx *gin.Context) {
		if _, ok := Caller(ctx); !ok {
			return
		}
		ctx.Status(http.StatusNoContent)
	}, http.MethodGet, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
