package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func TestCorsConfig(t *testing.T) {
	t.Run("wildcard allows every origin", func(t *testing.T) {
		c := corsConfig([]string{"*"})
		if !c.AllowAllOrigins || len(c.AllowOrigins) != 0 {
			t.Fatalf("unexpected config: %+v", c)
		}
	})

	t.Run("explicit origins allow credentials", func(t *testing.T) {
		c := corsConfig([]string{"https://pagos.traful.gob.ar"})
		if c.AllowAllOrigins || !c.AllowCredentials || c.AllowOrigins[0] != "https://pagos.traful.gob.ar" {
			t.Fatalf("unexpected config: %+v", c)
		}
		if err := c.Validate(); err != nil {
			t.Fatalf("invalid cors config: %v", err)
		}
	})
}

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logg := logrus.New()

	cases := []struct {
		name    string
		rate    string
		allowed int
	}{
		{name: "configured rate", rate: "2-M", allowed: 2},
		{name: "invalid rate uses default", rate: "muchos", allowed: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/login", loginRateLimit(tc.rate, logg), func(c *gin.Context) { c.Status(http.StatusOK) })

			for i := 0; i < tc.allowed; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
				if w.Code != http.StatusOK {
					t.Fatalf("attempt %d: expected 200, got %d", i+1, w.Code)
				}
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
			if w.Code != http.StatusTooManyRequests {
				t.Fatalf("expected 429, got %d", w.Code)
			}
		})
	}
}
