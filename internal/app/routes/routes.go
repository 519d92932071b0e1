package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/placementhub/internal/app/controllers"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	companyController *controllers.CompanyController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	students := api.Group("/students")
	{
		students.POST("/register", studentController.Register)
		students.POST("/login", studentController.Login)
	}
	api.POST("/admin/login", adminController.Login)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student self-service routes
		studentProtected := authenticated.Group("/students")
		studentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentProtected.GET("/profile", studentController.GetProfile)
			studentProtected.POST("/profile", studentController.UpdateProfile)
			studentProtected.PUT("/profile", studentController.UpdateProfile)
			studentProtected.GET("/eligible-companies", studentController.EligibleCompanies)
			studentProtected.GET("/notifications", studentController.Notifications)
			studentProtected.GET("/notifications/stream", studentController.NotificationStream)
			studentProtected.POST("/apply/:companyId", studentController.Apply)
			studentProtected.GET("/applications", studentController.Applications)
		}

		// Admin routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.GET("/students", adminController.ListStudents)
			adminProtected.DELETE("/students/:id", adminController.DeleteStudent)
			adminProtected.POST("/admin/send-notification", adminController.SendNotification)
			adminProtected.GET("/admin/applications/all", adminController.AllApplications)
		}

		// Company routes, readable by both roles
		companies := authenticated.Group("/companies")
		{
			companies.GET("", companyController.List)

			companiesAdminProtected := companies.Group("")
			companiesAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				companiesAdminProtected.POST("", companyController.Create)
				companiesAdminProtected.GET("/:id/eligible-students", companyController.EligibleStudents)
				companiesAdminProtected.DELETE("/:id", companyController.Delete)
			}
		}
	}
}
