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

// CompanyController handles company posting and eligibility queries
type CompanyController struct {
	companyService     services.CompanyService
	eligibilityService services.EligibilityService
	logger             zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(
	companyService services.CompanyService,
	eligibilityService services.EligibilityService,
	logger zerolog.Logger,
) *CompanyController {
	return &CompanyController{
		companyService:     companyService,
		eligibilityService: eligibilityService,
		logger:             logger,
	}
}

// Create posts a new company drive
// @Summary Post a company
// @Description Creates a company with its visiting date and eligibility thresholds. Company names are unique.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or company name already exists"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid company payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	company, err := c.companyService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("companyID", company.ID).Str("name", company.Name).Msg("Company posted")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(company))
}

// List retrieves all companies
// @Summary List companies
// @Description Returns every posted company with eligibility thresholds, earliest visiting date first.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Router /companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	companies, err := c.companyService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(companies))
}

// EligibleStudents lists the students who meet a company's thresholds
// @Summary List eligible students
// @Description Returns the fully-registered students who satisfy the company's eligibility thresholds, for targeting a broadcast.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Eligible students"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id}/eligible-students [get]
func (c *CompanyController) EligibleStudents(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	students, err := c.eligibilityService.EligibleStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// Delete removes a company
// @Summary Delete a company
// @Description Removes the company posting. Applications already made keep their record and tolerate the missing company.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Company deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid company id"
// @Failure 401 {object} dto.ErrorResponse "Not authorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (c *CompanyController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company ID format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.companyService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("companyID", id).Msg("Company deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Company deleted successfully"}))
}
