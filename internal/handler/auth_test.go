package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_CurrentUser(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
		want   string
	}{
		{
			name: "full session",
			values: map[string]any{
				middleware.UserIDKey:      "user_2abc",
				middleware.SessionIDKey:   "sess_9xyz",
				middleware.UserRoleKey:    "org:admin",
				middleware.PermissionsKey: []string{"org:posts:write"},
			},
			want: `{"id":"user_2abc","session_id":"sess_9xyz","role":"org:admin","permissions":["org:posts:write"]}`,
		},
		{
			name: "user without org",
			values: map[string]any{
				middleware.UserIDKey:    "user_2abc",
				middleware.SessionIDKey: "sess_9xyz",
			},
			want: `{"id":"user_2abc","session_id":"sess_9xyz"}`,
		},
	}

	h := NewAuthHandler(&server.Server{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/user", nil), rec)
			for k, v := range tt.values {
				c.Set(k, v)
			}

			require.NoError(t, Handle(h.CurrentUser, http.StatusOK)(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
