package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/config"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/api/handler"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/api/middleware"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/jwt"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/redis"
)

const (
	maxBodyBytes     = 1 << 20 // 1MB
	authRateLimit    = 20
	authRateWindow   = time.Minute
	submitRateLimit  = 10
	submitRateWindow = time.Minute
)

// Setup builds the Gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── Probes ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Auth endpoints (no token required); brute-force limited.
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, authRateLimit, authRateWindow))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Public form submission; members apply before having accounts.
		v1.POST("/forms/:id/submissions",
			middleware.RateLimit(rdb, submitRateLimit, submitRateWindow),
			h.Form.Submit)
		v1.GET("/forms/:id", h.Form.Get)

		// Public calendar feed for calendar subscriptions.
		v1.GET("/classes/calendar.ics", h.Export.ClassCalendar)

		// Authenticated routes.
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// Lead-and-above administration.
			lead := middleware.MinRole(model.RoleTeamLead)
			// President-and-above governance.
			president := middleware.MinRole(model.RolePresident)

			users := authorized.Group("/users")
			{
				users.GET("", lead, h.User.List)
				users.GET("/:id", lead, h.User.Get)
				users.PUT("/:id", lead, h.User.Update)
				users.DELETE("/:id", president, h.User.Delete)
				users.PUT("/:id/role", president, h.User.AssignRole)
			}

			teams := authorized.Group("/teams")
			{
				teams.GET("", h.Team.List)
				teams.GET("/:id", h.Team.Get)
				teams.GET("/:id/members", h.Team.ListMembers)
				teams.POST("", president, h.Team.Create)
				teams.PUT("/:id", president, h.Team.Update)
				teams.DELETE("/:id", president, h.Team.Delete)
				teams.POST("/:id/members", lead, h.Team.AddMember)
				teams.DELETE("/:id/members/:userId", lead, h.Team.RemoveMember)
			}

			fields := authorized.Group("/fields")
			{
				fields.GET("", h.Field.List)
				fields.GET("/:id", h.Field.Get)
				fields.GET("/:id/members", h.Field.ListMembers)
				fields.POST("", president, h.Field.Create)
				fields.PUT("/:id", president, h.Field.Update)
				fields.DELETE("/:id", president, h.Field.Delete)
				fields.POST("/:id/members", lead, h.Field.AddMember)
			}

			classes := authorized.Group("/classes")
			{
				classes.GET("", h.Class.List)
				classes.GET("/:id", h.Class.Get)
				classes.POST("", lead, h.Class.Create)
				classes.PUT("/:id", lead, h.Class.Update)
				classes.DELETE("/:id", lead, h.Class.Delete)

				classes.POST("/:id/join", h.Attendance.Join)
				classes.POST("/:id/heartbeat", h.Attendance.Heartbeat)
				classes.POST("/:id/leave", h.Attendance.Leave)
				classes.GET("/:id/my-attendance", h.Attendance.MyAttendance)

				classes.POST("/:id/mark-attendance", lead, h.Attendance.Mark)
				classes.GET("/:id/attendance", lead, h.Attendance.ClassSummary)
				classes.GET("/user/:userId/attendance", lead, h.Attendance.UserHistory)
				classes.GET("/:id/attendance/export", lead, h.Export.ExportClassAttendance)
			}

			forms := authorized.Group("/forms")
			{
				forms.GET("", lead, h.Form.List)
				forms.POST("", president, h.Form.Create)
				forms.DELETE("/:id", president, h.Form.Delete)
				forms.GET("/:id/submissions", lead, h.Form.ListSubmissions)
				forms.GET("/submissions/:id", lead, h.Form.GetSubmission)
				forms.POST("/submissions/:id/verify", lead, h.Form.Verify)
				forms.POST("/submissions/:id/approve", lead, h.Form.Approve)
				forms.PUT("/submissions/:id/status", lead, h.Form.UpdateStatus)
			}

			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", h.Announcement.List)
				announcements.GET("/:id", h.Announcement.Get)
				announcements.POST("", lead, h.Announcement.Create)
				announcements.PUT("/:id", lead, h.Announcement.Update)
				announcements.DELETE("/:id", lead, h.Announcement.Delete)
			}

			events := authorized.Group("/events")
			{
				events.GET("", h.Event.List)
				events.GET("/:id", h.Event.Get)
				events.POST("", lead, h.Event.Create)
				events.PUT("/:id", lead, h.Event.Update)
				events.DELETE("/:id", lead, h.Event.Delete)
			}
		}
	}

	return r
}
