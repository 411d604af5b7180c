// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hrcore/internal/delivery/http/middleware"
	"hrcore/internal/delivery/http/router/handler"
	"hrcore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the router wires, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	PaysheetHandler   *handler.PaysheetHandler
	EducationHandler  *handler.EducationHandler
	GenericHandler    *handler.GenericHandler
	FileHandler       *handler.FileHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RefreshMiddleware *middleware.RefreshMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Session sliding applies to everything: any request with an authentic
	// cookie gets a fresh one, whether or not the route needs auth.
	e.Use(r.params.RefreshMiddleware.Slide)

	adminOnly := auth.RequireRoles(entity.RoleNameAdministrator)
	staff := auth.RequireRoles(entity.RoleNameAdministrator, entity.RoleNameAdministrative)
	staffOrRecruiter := auth.RequireRoles(
		entity.RoleNameAdministrator,
		entity.RoleNameAdministrative,
		entity.RoleNameRecruiter,
	)

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.GET("/google/login", r.params.AuthHandler.GoogleLogin)
		authGroup.GET("/google/redirect", r.params.AuthHandler.GoogleRedirect)
		authGroup.GET("", r.params.AuthHandler.Me, auth.Authenticate, adminOnly)
	}

	userGroup := e.Group("/user", auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.GET("", r.params.UserHandler.GetAll, staff)
		userGroup.GET("/identification/:identification", r.params.UserHandler.GetByIdentification, staffOrRecruiter)
		userGroup.POST("/search", r.params.UserHandler.Search, staffOrRecruiter)
		userGroup.POST("", r.params.UserHandler.Create, staff)
		userGroup.PUT("/:id", r.params.UserHandler.Update, staff)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete, staff)

		userGroup.GET("/states", r.params.UserHandler.GetStates)
		userGroup.GET("/roles", r.params.UserHandler.GetRoles)
		userGroup.GET("/identification-types", r.params.UserHandler.GetIdentificationTypes)

		userGroup.GET("/faults", r.params.UserHandler.GetAllFaults, staff)
		userGroup.GET("/faults/:id", r.params.UserHandler.GetFault, staff)
		userGroup.GET("/:userId/faults", r.params.UserHandler.GetFaultsByUser, staff)
		userGroup.GET("/:userId/faults/current", r.params.UserHandler.GetCurrentFaultsByUser, staff)
		userGroup.POST("/faults", r.params.UserHandler.CreateFault, staff)
		userGroup.PUT("/faults/:id", r.params.UserHandler.UpdateFault, staff)
		userGroup.DELETE("/faults/:id", r.params.UserHandler.DeleteFault, staff)

		userGroup.GET("/file-types", r.params.UserHandler.GetFileTypes)
		userGroup.POST("/file-types", r.params.UserHandler.CreateFileType, staff)
		userGroup.PUT("/file-types/:id", r.params.UserHandler.UpdateFileType, staff)
		userGroup.DELETE("/file-types/:id", r.params.UserHandler.DeleteFileType, staff)

		userGroup.GET("/files", r.params.UserHandler.GetAllUserFiles, staff)
		userGroup.GET("/:id/files", r.params.UserHandler.GetUserFiles, staffOrRecruiter)
		userGroup.POST("/:id/files", r.params.UserHandler.UploadUserFile, staff)
		userGroup.DELETE("/:id/files/:fileId", r.params.UserHandler.DeleteUserFile, staff)
	}

	fileGroup := e.Group("/files", auth.Authenticate, staffOrRecruiter)
	{
		fileGroup.GET("/:id/download", r.params.FileHandler.Download)
	}

	paysheetGroup := e.Group("/paysheet", auth.Authenticate, staff)
	{
		paysheetGroup.GET("", r.params.PaysheetHandler.GetPaysheets)
		paysheetGroup.GET("/user/:userId", r.params.PaysheetHandler.GetPaysheetsByUser)
		paysheetGroup.POST("", r.params.PaysheetHandler.CreatePaysheet)
		paysheetGroup.PUT("/:id", r.params.PaysheetHandler.UpdatePaysheet)
		paysheetGroup.DELETE("/:id", r.params.PaysheetHandler.DeletePaysheet)

		paysheetGroup.GET("/job-positions", r.params.PaysheetHandler.GetJobPositions)
		paysheetGroup.GET("/job-positions/:id", r.params.PaysheetHandler.GetJobPosition)
		paysheetGroup.POST("/job-positions", r.params.PaysheetHandler.CreateJobPosition)
		paysheetGroup.PUT("/job-positions/:id", r.params.PaysheetHandler.UpdateJobPosition)
		paysheetGroup.DELETE("/job-positions/:id", r.params.PaysheetHandler.DeleteJobPosition)

		paysheetGroup.GET("/contract-types", r.params.PaysheetHandler.GetContractTypes)
		paysheetGroup.GET("/contract-types/:id", r.params.PaysheetHandler.GetContractType)
		paysheetGroup.POST("/contract-types", r.params.PaysheetHandler.CreateContractType)
		paysheetGroup.PUT("/contract-types/:id", r.params.PaysheetHandler.UpdateContractType)
		paysheetGroup.DELETE("/contract-types/:id", r.params.PaysheetHandler.DeleteContractType)

		paysheetGroup.GET("/paysheet-types", r.params.PaysheetHandler.GetPaysheetTypes)
		paysheetGroup.GET("/paysheet-types/:id", r.params.PaysheetHandler.GetPaysheetType)
		paysheetGroup.POST("/paysheet-types", r.params.PaysheetHandler.CreatePaysheetType)
		paysheetGroup.PUT("/paysheet-types/:id", r.params.PaysheetHandler.UpdatePaysheetType)
		paysheetGroup.DELETE("/paysheet-types/:id", r.params.PaysheetHandler.DeletePaysheetType)

		paysheetGroup.GET("/novelties", r.params.PaysheetHandler.GetNovelties)
		paysheetGroup.GET("/novelties/:id", r.params.PaysheetHandler.GetNovelty)
		paysheetGroup.GET("/novelties/contract/:contractId", r.params.PaysheetHandler.GetNoveltiesByContract)
		paysheetGroup.POST("/novelties", r.params.PaysheetHandler.CreateNovelty)
		paysheetGroup.PUT("/novelties/:id", r.params.PaysheetHandler.UpdateNovelty)
		paysheetGroup.DELETE("/novelties/:id", r.params.PaysheetHandler.DeleteNovelty)

		paysheetGroup.GET("/concept-types", r.params.PaysheetHandler.GetConceptTypes)
		paysheetGroup.GET("/concept-types/:id", r.params.PaysheetHandler.GetConceptType)
		paysheetGroup.POST("/concept-types", r.params.PaysheetHandler.CreateConceptType)
		paysheetGroup.PUT("/concept-types/:id", r.params.PaysheetHandler.UpdateConceptType)
		paysheetGroup.DELETE("/concept-types/:id", r.params.PaysheetHandler.DeleteConceptType)

		paysheetGroup.GET("/concepts", r.params.PaysheetHandler.GetConcepts)
		paysheetGroup.GET("/concepts/:id", r.params.PaysheetHandler.GetConcept)
		paysheetGroup.POST("/concepts", r.params.PaysheetHandler.CreateConcept)
		paysheetGroup.PUT("/concepts/:id", r.params.PaysheetHandler.UpdateConcept)
		paysheetGroup.DELETE("/concepts/:id", r.params.PaysheetHandler.DeleteConcept)

		paysheetGroup.GET("/payments", r.params.PaysheetHandler.GetPayments)
		paysheetGroup.GET("/payments/:id", r.params.PaysheetHandler.GetPayment)
		paysheetGroup.GET("/payments/user/:userId", r.params.PaysheetHandler.GetPaymentsByUser)
		paysheetGroup.GET("/payments/pending", r.params.PaysheetHandler.GetPendingPayments)
		paysheetGroup.GET("/payments/pending/user/:userId", r.params.PaysheetHandler.GetPendingPaymentsByUser)
		paysheetGroup.POST("/payments", r.params.PaysheetHandler.CreatePayment)
		paysheetGroup.PUT("/payments/:id", r.params.PaysheetHandler.UpdatePayment)
		paysheetGroup.DELETE("/payments/:id", r.params.PaysheetHandler.DeletePayment)
	}

	educationGroup := e.Group("/education", auth.Authenticate, staffOrRecruiter)
	{
		educationGroup.GET("/skills", r.params.EducationHandler.GetSkills)
		educationGroup.POST("/skills", r.params.EducationHandler.CreateSkill, staff)
		educationGroup.PUT("/skills/:id", r.params.EducationHandler.UpdateSkill, staff)
		educationGroup.DELETE("/skills/:id", r.params.EducationHandler.DeleteSkill, staff)

		educationGroup.GET("/user-skills", r.params.EducationHandler.GetUserSkills)
		educationGroup.GET("/user-skills/user/:userId", r.params.EducationHandler.GetUserSkillsByUser)
		educationGroup.POST("/user-skills", r.params.EducationHandler.LinkUserSkill)
		educationGroup.PUT("/user-skills/:id", r.params.EducationHandler.UpdateUserSkillAffinity)

		educationGroup.GET("/courses", r.params.EducationHandler.GetCourses)
		educationGroup.POST("/courses", r.params.EducationHandler.CreateCourse, staff)
		educationGroup.PUT("/courses/:id", r.params.EducationHandler.UpdateCourse, staff)
		educationGroup.DELETE("/courses/:id", r.params.EducationHandler.DeleteCourse, staff)

		educationGroup.POST("/enrollments", r.params.EducationHandler.EnrollUser)
		educationGroup.POST("/enrollments/attendance", r.params.EducationHandler.MarkAttendance)
		educationGroup.DELETE("/enrollments/:id", r.params.EducationHandler.UnenrollUser)
	}

	genericGroup := e.Group("/generic", auth.Authenticate)
	{
		genericGroup.GET("/branch-offices", r.params.GenericHandler.GetBranchOffices)
		genericGroup.GET("/branch-offices/search", r.params.GenericHandler.SearchBranchOffices)
		genericGroup.GET("/branch-offices/:id", r.params.GenericHandler.GetBranchOffice)
		genericGroup.POST("/branch-offices", r.params.GenericHandler.CreateBranchOffice, staff)
		genericGroup.PUT("/branch-offices/:id", r.params.GenericHandler.UpdateBranchOffice, staff)

		genericGroup.GET("/payment-methods", r.params.GenericHandler.GetPaymentMethods)
		genericGroup.GET("/payment-methods/search", r.params.GenericHandler.SearchPaymentMethods)
		genericGroup.GET("/payment-methods/:id", r.params.GenericHandler.GetPaymentMethod)
		genericGroup.POST("/payment-methods", r.params.GenericHandler.CreatePaymentMethod, staff)
		genericGroup.PUT("/payment-methods/:id", r.params.GenericHandler.UpdatePaymentMethod, staff)
	}
}
