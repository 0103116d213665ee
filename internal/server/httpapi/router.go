package httpapi

import (
	"github.com/dmitrijs2005/authd/internal/logging"
	"github.com/dmitrijs2005/authd/internal/server/auth"
	"github.com/dmitrijs2005/authd/internal/server/services"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine: ambient middleware first, then the
// public auth routes, then the guarded routes.
func NewRouter(
	logger logging.Logger,
	guard *auth.Guard,
	authService *services.AuthService,
	userService *services.UserService,
	corsOrigin string,
) *gin.Engine {

	h := &handlers{
		authService: authService,
		userService: userService,
		logger:      logger.With("module", "httpapi"),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.logger))
	r.Use(CORS(corsOrigin))

	authRequired := AuthRequired(guard, h.logger)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.signup)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", authRequired, h.logout)
		authGroup.GET("/blacklisted-tokens", authRequired, h.blacklistedTokens)
	}

	usersGroup := r.Group("/users")
	{
		usersGroup.GET("/profile", authRequired, h.profile)
	}

	return r
}
