package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ID    int64   `param:"id" json:"-" validate:"gt=0"`
	Title string  `json:"title" validate:"required,min=2,max=5"`
	Kind  string  `json:"kind" validate:"omitempty,oneof=a b"`
	Note  *string `json:"note" validate:"omitnil,min=1"`
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "window", Message: "must end after it starts"}}
}

func newContext(method, body, id string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/samples/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/samples/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := &sampleRequest{}
		require.NoError(t, BindAndValidate(newContext(http.MethodPost, `{"title":"abc","kind":"a"}`, "7"), req))
		assert.Equal(t, int64(7), req.ID)
		assert.Equal(t, "abc", req.Title)
		assert.Nil(t, req.Note)
	})

	t.Run("field errors use wire names", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"title":"a","kind":"z","note":""}`, "7"), &sampleRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, errs.ValidationFailedMessage, httpErr.Message)
		assert.ElementsMatch(t, []errs.FieldError{
			{Field: "title", Error: "must be at least 2 characters"},
			{Field: "kind", Error: "must be one of: a b"},
			{Field: "note", Error: "must be at least 1 characters"},
		}, httpErr.Errors)
	})

	t.Run("path id", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"title":"abc"}`, "0"), &sampleRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, []errs.FieldError{{Field: "id", Error: "must be greater than 0"}}, httpErr.Errors)
	})

	t.Run("malformed id", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"title":"abc"}`, "x"), &sampleRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Empty(t, httpErr.Errors)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"title":`, "1"), &sampleRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	})

	t.Run("custom errors", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{}`, "1"), &customRequest{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, []errs.FieldError{{Field: "window", Error: "must end after it starts"}}, httpErr.Errors)
	})
}
