package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/elisfemina/react-mesto-api-full/internal/core/auth"
	"github.com/elisfemina/react-mesto-api-full/internal/transport/http/handler"
	mdw "github.com/elisfemina/react-mesto-api-full/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, userH *handler.UserHandler, cardH *handler.CardHandler, jwter *auth.JWTer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 公共路由
	r.POST("/signup", userH.Signup)
	r.POST("/signin", userH.Signin)

	// 鉴权分组，其余全部路由都要带 Bearer token
	authed := r.Group("")
	authed.Use(mdw.AuthJWT(jwter))

	users := authed.Group("/users")
	{
		users.GET("", userH.GetUsers)
		users.GET("/me", userH.GetMe)
		users.GET("/:userId", userH.GetUser)
		users.PATCH("/me", userH.UpdateProfile)
		users.PATCH("/avatar", userH.UpdateAvatar)
	}

	cards := authed.Group("/cards")
	{
		cards.GET("", cardH.GetCards)
		cards.POST("", cardH.CreateCard)
		cards.DELETE("/:cardId", cardH.DeleteCard)
		cards.PUT("/:cardId/likes", cardH.LikeCard)
		cards.DELETE("/:cardId/likes", cardH.DislikeCard)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
	})

	return r
}
