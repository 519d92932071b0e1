// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/services"
	"github.com/yigit/placementhub/internal/middleware"
	"github.com/yigit/placementhub/internal/pkg/ws"
)

// StudentController handles student account, profile, eligibility and
// application operations
type StudentController struct {
	authService        services.AuthService
	studentService     services.StudentService
	eligibilityService services.EligibilityService
	applicationService services.ApplicationService
	hub                *ws.Hub
	logger             zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	authService services.AuthService,
	studentService services.StudentService,
	eligibilityService services.EligibilityService,
	applicationService services.ApplicationService,
	hub *ws.Hub,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		authService:        authService,
		studentService:     studentService,
		eligibilityService: eligibilityService,
		applicationService: applicationService,
		hub:                hub,
		logger:             logger,
	}
}

// Register handles student account creation
// @Summary Register a new student
// @Description Creates a student account from email and password and returns a signed token. The profile starts empty and is completed later via the profile endpoint.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student credentials"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	authResponse, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(authResponse))
}

// Login handles student authentication
// @Summary Log in as a student
// @Description Verifies credentials and returns a signed token carrying the student role.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Student credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /students/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	authResponse, err := c.authService.LoginStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse))
}

// GetProfile returns the authenticated student's profile
// @Summary Get own profile
// @Description Returns the authenticated student's full profile, marks and resume link included.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID := middleware.PrincipalID(ctx)

	student, err := c.studentService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateProfile completes or edits the authenticated student's profile
// @Summary Update own profile
// @Description Applies a partial update to the authenticated student's profile. Absent fields keep their stored values.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid field value"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Router /students/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	studentID := middleware.PrincipalID(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateProfile(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", studentID).Msg("Student profile updated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// EligibleCompanies lists the companies whose thresholds the student meets
// @Summary List eligible companies
// @Description Returns the companies whose eligibility thresholds the authenticated student satisfies. Students with an incomplete profile get a 404 directing them to finish registration.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Eligible companies"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 404 {object} dto.ErrorResponse "Profile incomplete"
// @Router /students/eligible-companies [get]
func (c *StudentController) EligibleCompanies(ctx *gin.Context) {
	studentID := middleware.PrincipalID(ctx)

	companies, err := c.eligibilityService.EligibleCompanies(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(companies))
}

// Notifications lists the student's notification inbox
// @Summary List notifications
// @Description Returns the authenticated student's notifications, newest first.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Router /students/notifications [get]
func (c *StudentController) Notifications(ctx *gin.Context) {
	studentID := middleware.PrincipalID(ctx)

	notifications, err := c.studentService.Notifications(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(notifications))
}

// NotificationStream upgrades the connection to a websocket that pushes
// notification events as admins broadcast them
// @Summary Stream notifications
// @Description Upgrades to a websocket and pushes notification events to the authenticated student in real time. Pass the token as a query parameter.
// @Tags students
// @Security BearerAuth
// @Success 101 {string} string "Switching protocols"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Router /students/notifications/stream [get]
func (c *StudentController) NotificationStream(ctx *gin.Context) {
	studentID := middleware.PrincipalID(ctx)

	if err := ws.Serve(c.hub, ctx.Writer, ctx.Request, studentID, c.logger); err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Websocket upgrade failed")
	}
}

// Apply records an application to a company
// @Summary Apply to a company
// @Description Records the authenticated student's application to the company, at most once per company.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param companyId path int true "Company ID"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application recorded"
// @Failure 400 {object} dto.ErrorResponse "Already applied or invalid company id"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /students/apply/{companyId} [post]
func (c *StudentController) Apply(ctx *gin.Context) {
	studentID := middleware.PrincipalID(ctx)

	companyID, err := strconv.ParseInt(ctx.Param("companyId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), studentID, companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", studentID).
		Int64("companyID", companyID).
		Msg("Application recorded")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// Applications lists the student's own applications
// @Summary List own applications
// @Description Returns the authenticated student's applications, newest first, with company display fields.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Router /students/applications [get]
func (c *StudentController) Applications(ctx *gin.Context) {
	studentID := middleware.PrincipalID(ctx)

	applications, err := c.applicationService.ListByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}
