package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestRespondWithJSON_NilPayload(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
		expectFields bool
	}{
		{
			name:         "validation error with fields",
			err:          fmt.Errorf("wrap: %w", domain.NewValidationError("email", "already taken")),
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request data",
			expectFields: true,
		},
		{name: "bare validation", err: domain.ErrValidation, expectedCode: http.StatusBadRequest},
		{name: "invalid transition", err: domain.ErrInvalidTransition, expectedCode: http.StatusBadRequest},
		{name: "unauthenticated", err: domain.ErrUnauthenticated, expectedCode: http.StatusUnauthorized, expectedMsg: "Unauthorized"},
		{name: "forbidden", err: domain.ErrForbidden, expectedCode: http.StatusForbidden, expectedMsg: "Forbidden"},
		{name: "not found", err: fmt.Errorf("offer 3: %w", domain.ErrNotFound), expectedCode: http.StatusNotFound, expectedMsg: "Not found"},
		{name: "conflict", err: domain.ErrConflict, expectedCode: http.StatusConflict},
		{name: "unknown", err: errors.New("db down"), expectedCode: http.StatusInternalServerError, expectedMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondWithServiceError(w, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			var body Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, body.Message)
			}
			if tt.expectFields {
				assert.Equal(t, map[string]string{"email": "already taken"}, body.Errors)
			} else {
				assert.Empty(t, body.Errors)
			}
		})
	}
}
