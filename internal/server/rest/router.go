package rest

import (
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/gin-gonic/gin"
)

// placeholderResources are routed but not implemented yet.
var placeholderResources = []string{
	"activity", "exercises", "medications", "progress", "forum", "advice", "notifications",
}

// NewRouter wires gin routes and middleware.
func NewRouter(h *Handler, auth *Auth, limiter *RateLimiter, logger logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	r.GET("/health", h.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	if limiter != nil {
		authGroup.Use(limiter.Handler())
	}
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	me := api.Group("/users/me", auth.ValidateJWT)
	{
		me.GET("", h.GetProfile)
		me.PATCH("", h.UpdateProfile)
		me.PUT("/password", h.ChangePassword)
		me.POST("/photo", h.UploadPhoto)
		me.PUT("/photo", h.ConfirmPhoto)
		me.GET("/photo", h.DownloadPhoto)
	}

	for _, res := range placeholderResources {
		api.GET("/"+res, h.Placeholder(res))
		api.POST("/"+res, h.Placeholder(res))
	}

	return r
}
