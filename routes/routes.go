package routes

import (
	"journal-portal-api/controllers"
	"journal-portal-api/middleware"
	"journal-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Journal Portal API is running",
				})
			})

			// Published content; issue listing widens for authenticated staff
			public.GET("/issues", middleware.OptionalAuthMiddleware(), controllers.GetIssues)
			public.GET("/issues/:id", controllers.GetIssue)
			public.GET("/articles", controllers.GetArticles)
			public.GET("/articles/search", controllers.SearchArticles)
			public.GET("/articles/by-slug/:slug", controllers.GetArticleBySlug)
			public.GET("/articles/by-slug/:slug/download", controllers.DownloadArticle)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Manuscript submissions
			submissions := protected.Group("/submissions")
			{
				submissions.POST("", controllers.CreateSubmission)
				submissions.GET("", controllers.GetSubmissions)
				submissions.GET("/:id", controllers.GetSubmission)
				submissions.PUT("/:id", controllers.UpdateSubmission)
				submissions.POST("/:id/resubmit", controllers.ResubmitCorrections)

				// Status ledger
				submissions.GET("/:id/history", controllers.GetSubmissionHistory)
				submissions.GET("/:id/history/latest", controllers.GetSubmissionLatestStatus)

				// Peer review
				submissions.GET("/:id/reviews", controllers.GetReviews)
				submissions.POST("/:id/reviews",
					middleware.RequireRole(models.RoleEditor, models.RoleAdmin),
					controllers.CreateReview)

				// Lifecycle transitions; the engine re-checks permissions per target
				submissions.POST("/:id/transition",
					middleware.RequireRole(models.RoleEditor, models.RoleAdmin),
					controllers.TransitionSubmission)
			}

			// Editorial queue
			protected.GET("/editor/queue",
				middleware.RequireRole(models.RoleEditor, models.RoleAdmin),
				controllers.GetEditorQueue)

			// Issues
			issues := protected.Group("/issues")
			{
				issues.POST("",
					middleware.RequireRole(models.RoleEditor, models.RoleAdmin),
					controllers.CreateIssue)
				issues.PUT("/:id",
					middleware.RequireRole(models.RoleEditor, models.RoleAdmin),
					controllers.UpdateIssue)
				issues.POST("/:id/publish",
					middleware.RequireRole(models.RoleAdmin),
					controllers.PublishIssue)
				issues.DELETE("/:id",
					middleware.RequireRole(models.RoleAdmin),
					controllers.DeleteIssue)
			}

			// Article promotion
			protected.POST("/articles",
				middleware.RequireRole(models.RoleAdmin),
				controllers.PromoteSubmission)

			// Typesetting templates and papers
			templates := protected.Group("/templates")
			templates.Use(middleware.RequireRole(models.RoleEditor, models.RoleAdmin))
			{
				templates.POST("", controllers.CreateTemplate)
				templates.GET("", controllers.GetTemplates)
				templates.GET("/:id", controllers.GetTemplate)
			}

			papers := protected.Group("/papers")
			papers.Use(middleware.RequireRole(models.RoleEditor, models.RoleAdmin))
			{
				papers.POST("", controllers.CreatePaper)
				papers.GET("/:id", controllers.GetPaper)
				papers.PUT("/:id", controllers.UpdatePaper)
				papers.POST("/:id/finalize", controllers.FinalizePaper)
			}

			// Documents
			documents := protected.Group("/documents")
			{
				documents.POST("/upload", controllers.UploadDocument)
				documents.GET("/download/:file_id", controllers.DownloadDocument)
			}

			// User administration
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", controllers.GetUsers)
				admin.PUT("/users/:id/role", controllers.ChangeUserRole)
			}
		}
	}
}
