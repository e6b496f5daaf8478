package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pennywise/internal/errors"
	"pennywise/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-err-1")

	CustomHTTPErrorHandler(err, c)

	var errorResp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResp))
	return rec, errorResp
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, resp := runErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(errors.ExpenseNotFound), resp.Error.Code)
	assert.Equal(t, "trace-err-1", resp.Error.TraceID)
}

func TestErrorHandler_GenericErrorBecomesSystemError(t *testing.T) {
	rec, resp := runErrorHandler(t, fmt.Errorf("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(errors.SystemInternalError), resp.Error.Code)
	// Internal details must never leak to the client
	assert.NotContains(t, resp.Error.Message, "connection reset")
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	type payload struct {
		Email  string `json:"email" validate:"required,email"`
		Amount string `json:"amount" validate:"required,money_amount"`
	}

	err := validation.GetValidator().GetValidate().Struct(payload{Email: "nope", Amount: "-1"})
	require.Error(t, err)

	rec, resp := runErrorHandler(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(errors.ValidationGeneral), resp.Error.Code)
	assert.Len(t, resp.Error.Details, 2)
}

func TestErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.NoContent(http.StatusOK))
	CustomHTTPErrorHandler(fmt.Errorf("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
