package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
		fields  []errs.FieldError
	}{
		{
			name:    "not found names the entity",
			err:     NotFound("comments"),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Comment not found",
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("loading: %w", NotFound("users")),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "User not found",
		},
		{
			name: "foreign key violation without column",
			err: &pgconn.PgError{
				Code:           "23503",
				TableName:      "comments",
				ConstraintName: "comments_user_id_fkey",
				Message:        "insert or update violates foreign key constraint",
			},
			status:  http.StatusBadRequest,
			code:    "COMMENT_NOT_FOUND",
			message: "The referenced user does not exist",
			fields:  []errs.FieldError{{Field: "user_id", Error: "does not exist"}},
		},
		{
			name: "not null violation",
			err: &pgconn.PgError{
				Code:       "23502",
				TableName:  "posts",
				ColumnName: "body",
			},
			status:  http.StatusBadRequest,
			code:    "POST_REQUIRED",
			message: "The Body is required",
			fields:  []errs.FieldError{{Field: "body", Error: "is required"}},
		},
		{
			name:    "check violation",
			err:     &pgconn.PgError{Code: "23514", TableName: "users", ColumnName: "name"},
			status:  http.StatusBadRequest,
			code:    "USER_INVALID",
			message: "The Name value does not meet required conditions",
		},
		{
			name:    "unknown pg error",
			err:     &pgconn.PgError{Code: "57014"},
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)

			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Equal(t, tt.fields, httpErr.Errors)
		})
	}
}

func TestHandleError_PassesHTTPErrorsThrough(t *testing.T) {
	in := errs.NewFieldValidationError(errs.FieldError{Field: "post_id", Error: "does not exist"})
	assert.Same(t, in, HandleError(in))
}

func TestExtractColumn(t *testing.T) {
	assert.Equal(t, "user_id", extractColumnForForeignKey("comments_user_id_fkey"))
	assert.Equal(t, "post_id", extractColumnForForeignKey("comments_post_id_fkey"))
	assert.Equal(t, "", extractColumnForForeignKey("not_a_foreign_key"))

	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestErrCode(t *testing.T) {
	pgErr := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", pgErr)))
	assert.Equal(t, SeverityError, pgErr.Severity)
	assert.Equal(t, Other, ErrCode(errors.New("x")))
}
