package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobfit/backend/auth"
)

// Routes groups the API handlers. Nil handlers leave their routes unregistered.
type Routes struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Match   *MatchHandler
	Skills  *SkillHandler
	Tracked *TrackedJobHandler
	Tools   *ToolsHandler
}

// Register mounts the routes on router under /api
func (r Routes) Register(router *gin.Engine, jwtService *auth.JWTService) *gin.RouterGroup {
	if r.Health != nil {
		router.GET("/health", r.Health.Health)
	}

	api := router.Group("/api")
	if r.Health != nil {
		api.GET("/health", r.Health.Health)
	}

	requireAuth := auth.AuthMiddleware(jwtService)
	optionalAuth := auth.OptionalAuthMiddleware(jwtService)

	if r.Auth != nil {
		authGroup := api.Group("/auth")
		authGroup.POST("/register", r.Auth.Register)
		authGroup.POST("/login", r.Auth.Login)
		authGroup.POST("/google", r.Auth.GoogleLogin)

		protected := authGroup.Group("", requireAuth)
		protected.GET("/profile", r.Auth.GetProfile)
		protected.PUT("/profile", r.Auth.UpdateProfile)
		protected.POST("/cv", r.Auth.UploadCV)
	}

	if r.Match != nil {
		api.POST("/match", optionalAuth, r.Match.Match)
		api.POST("/gaps", r.Match.Gaps)
	}

	if r.Skills != nil {
		api.POST("/skills/extract", r.Skills.ExtractSkills)
	}

	if r.Tracked != nil {
		tracked := api.Group("/tracked-jobs", requireAuth)
		tracked.GET("", r.Tracked.List)
		tracked.PUT("/:id", r.Tracked.Upsert)
		tracked.DELETE("/:id", r.Tracked.Delete)
	}

	if r.Tools != nil {
		api.GET("/tools", r.Tools.List)
	}

	return api
}
