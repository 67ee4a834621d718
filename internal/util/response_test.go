package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "试卷不存在", err: ErrPaperNotFound, status: http.StatusNotFound},
		{name: "包装后的错误", err: fmt.Errorf("load: %w", ErrAnswerNotFound), status: http.StatusNotFound},
		{name: "无权限", err: ErrPermissionDenied, status: http.StatusForbidden},
		{name: "凭证错误", err: ErrInvalidCredentials, status: http.StatusUnauthorized},
		{name: "用户名已占用", err: ErrUsernameTaken, status: http.StatusBadRequest},
		{name: "未知错误", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"score": 50})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":200,"message":"success","data":{"score":50}}`, w.Body.String())
}
