package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []int{1, 2}, &Meta{Page: 2, Limit: 2, TotalItems: 5, TotalPages: 3, Showing: "3-4 of 5"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success bool `json:"success"`
		Meta    Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "3-4 of 5", body.Meta.Showing)
	assert.Equal(t, int64(5), body.Meta.TotalItems)
}

func TestWriteJSON_EncodingFailureKeepsSingleStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	// nothing is appended after a failed encode
	assert.NotContains(t, rec.Body.String(), "ENCODING_ERROR")
}

func TestHandleError_WrappedConflicts(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("failed to create attendance: %w", attendance.ErrAlreadyCheckedIn), http.StatusConflict},
		{fmt.Errorf("failed to create employee: %w", employee.ErrNIKExists), http.StatusConflict},
		{employee.ErrEmployeeNotFound, http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)
		assert.Equal(t, c.code, rec.Code, c.err.Error())
	}
}
