package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPublicRoutes registers endpoints that need no credential.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)
	r.GET("/available", hb.GetAvailableHandler)
	r.GET("/services", hb.GetServicesHandler)
	r.POST("/booking", hb.CreateBookingHandler)
	r.GET("/admin/:email", hb.IsAdminHandler)
	r.PUT("/user/:email", hb.UpsertUserHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.HealthHandler == nil {
		return
	}
	r.GET("/health", hb.HealthHandler)
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine, h http.Handler) {
	r.GET("/metrics", gin.WrapH(h))
}

// RegisterAuthenticatedRoutes registers endpoints that require a valid credential.
func RegisterAuthenticatedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authed := r.Group("")
	authed.Use(middleware.JWTAuthMiddleware(hb.Verifier))
	{
		authed.GET("/booking", hb.GetPatientBookingsHandler)
		authed.GET("/user", hb.GetUsersHandler)
	}
}

// RegisterAdminRoutes registers endpoints that require a credential and the admin role.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("")
	admin.Use(middleware.JWTAuthMiddleware(hb.Verifier), middleware.AdminMiddleware(hb.Authorizer))
	{
		admin.PUT("/user/admin/:email", hb.GrantAdminHandler)
		admin.POST("/doctor", hb.AddDoctorHandler)
		admin.GET("/doctor", hb.GetDoctorsHandler)
	}
}

// CORS returns the CORS middleware for the given origins.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterAuthenticatedRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// DefaultMetricsHandler serves the default Prometheus registry.
func DefaultMetricsHandler() http.Handler {
	return promhttp.Handler()
}
