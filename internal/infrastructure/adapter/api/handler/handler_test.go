package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter authenticates every request as userID; zero leaves the caller anonymous
func newRouter(userID uint64, role string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID > 0 {
			middleware.SetIdentity(c, userID, role)
		}
		c.Next()
	})
	return r
}

func serve(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return decode[dto.ErrorResponse](t, rec)
}
