package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/products/1", nil)
	c.Set(RequestIDKey, "req-9")

	h(c)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestOK(t *testing.T) {
	w, env := run(t, func(c *gin.Context) { OK(c, http.StatusCreated, gin.H{"id": 1}) })

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.Equal(t, "req-9", env.RequestID)
	assert.NotEmpty(t, env.Timestamp)
}

func TestError_Typed(t *testing.T) {
	details := map[string]string{"field": "title"}
	w, env := run(t, func(c *gin.Context) { Error(c, apperr.ValidationFailed("invalid input", details)) })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "invalid input", env.Error.Message)
	assert.Equal(t, map[string]interface{}{"field": "title"}, env.Error.Details)
	assert.Equal(t, "/products/1", env.Path)
}

func TestError_UntypedIsHidden(t *testing.T) {
	w, env := run(t, func(c *gin.Context) { Error(c, errors.New("pq: password authentication failed")) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeInternal, env.Error.Code)
	assert.Equal(t, "internal server error", env.Error.Message)
}
