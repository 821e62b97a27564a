package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupScopedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(UserScope())
	r.GET("/ping", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestUserScope(t *testing.T) {
	t.Run("valid_user_id_passes", func(t *testing.T) {
		router := setupScopedRouter()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(UserIDHeader, "0194f3a0-1111-7000-8000-000000000001")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing_header_rejected", func(t *testing.T) {
		router := setupScopedRouter()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed_user_id_rejected", func(t *testing.T) {
		router := setupScopedRouter()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(UserIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
