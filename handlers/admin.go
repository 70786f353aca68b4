package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	UserService   user.UserService
	DoctorService doctor.DoctorService
	Logger        *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, ds doctor.DoctorService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		UserService:   us,
		DoctorService: ds,
		Logger:        logger,
	}
}

// GrantAdminHandler handles PUT /user/admin/:email.
func (ah *AdminHandler) GrantAdminHandler(c *gin.Context) {
	result, err := ah.UserService.GrantAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, ah.Logger, http.StatusInternalServerError, "failed to grant admin role", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddDoctorHandler handles POST /doctor.
func (ah *AdminHandler) AddDoctorHandler(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid doctor", "details": err.Error()})
		return
	}

	result, err := ah.DoctorService.Add(c.Request.Context(), doc)
	if err != nil {
		respondError(c, ah.Logger, http.StatusInternalServerError, "failed to add doctor", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetDoctorsHandler handles GET /doctor.
func (ah *AdminHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := ah.DoctorService.List(c.Request.Context())
	if err != nil {
		respondError(c, ah.Logger, http.StatusInternalServerError, "failed to fetch doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}
