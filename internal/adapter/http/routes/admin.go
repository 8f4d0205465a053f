package routes

import (
	"traful_pagos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const (
	PathAdmin = "/admin"
	PathStaff = "/staff"

	defaultLoginRate = "10-M"
)

func addAdminRoutes(rg *gin.RouterGroup, admin *handlers.AdminHandler, loginLimiter gin.HandlerFunc) {
	a := rg.Group(PathAdmin)
	{
		a.POST("/login", loginLimiter, admin.Login)
		a.POST("/stats-login", loginLimiter, admin.StatsLogin)

		a.GET("/payments", admin.ListPayments)
		a.GET("/payments/export", admin.ExportPayments)
		a.GET("/logs", admin.ListLogs)
		a.GET("/recaudacion", admin.ListRecaudacion)
		a.GET("/access_logs", admin.ListAccessLogs)
		a.GET("/stats", admin.Stats)
	}

	rg.Group(PathStaff).POST("/register_access", admin.RegisterStaffAccess)
}

// loginRateLimit throttles password attempts per client IP. rate uses the
// limiter format ("10-M", "100-H").
func loginRateLimit(rate string, logg *logrus.Logger) gin.HandlerFunc {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		logg.WithError(err).WithField("rate", rate).Warn("[startup] invalid ADMIN_LOGIN_RATE, using default")
		r, _ = limiter.NewRateFromFormatted(defaultLoginRate)
	}
	store := memory.NewStore()
	return mgin.NewMiddleware(limiter.New(store, r))
}
