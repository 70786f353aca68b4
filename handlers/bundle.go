package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the auth collaborators routes need.
type HandlerBundle struct {
	Verifier   middleware.CredentialVerifier
	Authorizer middleware.AdminAuthorizer

	// Public endpoints
	HomeHandler          gin.HandlerFunc
	HealthHandler        gin.HandlerFunc
	GetAvailableHandler  gin.HandlerFunc
	GetServicesHandler   gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
	IsAdminHandler       gin.HandlerFunc
	UpsertUserHandler    gin.HandlerFunc

	// Credential required
	GetPatientBookingsHandler gin.HandlerFunc
	GetUsersHandler           gin.HandlerFunc

	// Credential and admin role required
	GrantAdminHandler gin.HandlerFunc
	AddDoctorHandler  gin.HandlerFunc
	GetDoctorsHandler gin.HandlerFunc
}
