package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/services"
	"github.com/yigit/placementhub/internal/middleware"
)

// AdminController handles placement-cell operations
type AdminController struct {
	authService         services.AuthService
	studentService      services.StudentService
	applicationService  services.ApplicationService
	notificationService services.NotificationService
	logger              zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	authService services.AuthService,
	studentService services.StudentService,
	applicationService services.ApplicationService,
	notificationService services.NotificationService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		authService:         authService,
		studentService:      studentService,
		applicationService:  applicationService,
		notificationService: notificationService,
		logger:              logger,
	}
}

// Login handles admin authentication
// @Summary Log in as an admin
// @Description Verifies admin credentials and returns a signed token carrying the admin role.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	authResponse, err := c.authService.LoginAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse))
}

// SendNotification broadcasts a notification to the listed students
// @Summary Broadcast a notification
// @Description Appends the notification to every listed student's inbox in one bulk write, pushes it to connected websocket clients, and returns the number of students notified.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendNotificationRequest true "Notification content and target student IDs"
// @Success 200 {object} dto.APIResponse{data=dto.SendNotificationResponse} "Notification stored"
// @Failure 400 {object} dto.ErrorResponse "Empty company name, message or target list"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/send-notification [post]
func (c *AdminController) SendNotification(ctx *gin.Context) {
	var req dto.SendNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid notification payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notified, err := c.notificationService.Send(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SendNotificationResponse{Notified: notified}))
}

// AllApplications lists every application across students
// @Summary List all applications
// @Description Returns every application with student and company display fields, for the placement dashboard.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/applications/all [get]
func (c *AdminController) AllApplications(ctx *gin.Context) {
	applications, err := c.applicationService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// ListStudents lists every registered student
// @Summary List all students
// @Description Returns every student account with profile fields, for the placement dashboard.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// DeleteStudent removes a student account
// @Summary Delete a student
// @Description Removes the student account. Outstanding tokens for the account stop working on their next request.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student id"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", id).Msg("Student account deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted successfully"}))
}
