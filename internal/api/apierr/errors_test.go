package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/armoury/internal/model"
)

func TestWriteErrorMapsSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"armour", model.ErrArmourNotFound, http.StatusNotFound, CodeArmourNotFound},
		{"weapon", fmt.Errorf("id 7: %w", model.ErrWeaponNotFound), http.StatusNotFound, CodeWeaponNotFound},
		{"property", model.ErrPropertyNotFound, http.StatusNotFound, CodePropertyNotFound},
		{"invalid request", NewInvalidRequestError("bad id"), http.StatusBadRequest, CodeInvalidRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.status, StatusOf(tt.err))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("sqlite: disk I/O error"))

	assert.NotContains(t, rr.Body.String(), "sqlite")
}
