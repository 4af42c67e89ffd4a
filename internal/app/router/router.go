// Package router assembles the gin engine and its routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountshandler "tradetracker/internal/feature/accounts/transport/handler"
	advisorhandler "tradetracker/internal/feature/advisor/transport/handler"
	authhandler "tradetracker/internal/feature/auth/transport/handler"
	calendarhandler "tradetracker/internal/feature/calendar/transport/handler"
	statshandler "tradetracker/internal/feature/stats/transport/handler"
	tradeshandler "tradetracker/internal/feature/trades/transport/handler"
	jwtmw "tradetracker/internal/platform/jwt"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Trades   *tradeshandler.TradesHandler
	Stats    *statshandler.StatsHandler
	Advisor  *advisorhandler.AdvisorHandler
	Calendar *calendarhandler.CalendarHandler
	Accounts *accountshandler.AccountsHandler
}

// NewRouter wires all routes. Signup, login, health and the demo
// endpoints are public; everything else sits behind the JWT middleware.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", health)
	// User registration
	r.POST("/signup", h.Auth.Signup)
	// Login (issues a JWT)
	r.POST("/login", h.Auth.Login)
	// Demo endpoints need no credentials
	r.GET("/stats/demo", h.Stats.Demo)
	r.GET("/calendar/demo", h.Calendar.GetDemoCalendar)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/trades", h.Trades.GetTrades)
		auth.GET("/trades/account", h.Trades.GetAccount)

		auth.POST("/stats/calculate", h.Stats.Calculate)
		auth.POST("/stats/period", h.Stats.Period)

		auth.POST("/advisor/chat", h.Advisor.Chat)
		auth.POST("/advisor/analyze", h.Advisor.Analyze)

		auth.GET("/calendar", h.Calendar.GetCalendar)

		auth.GET("/accounts", h.Accounts.List)
		auth.POST("/accounts", h.Accounts.Create)
		auth.DELETE("/accounts/:id", h.Accounts.Delete)
	}

	return r
}

// health reports liveness.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
