// Package stub is an in-process stand-in for the salon platform API.
// The test suites run the client against it, and cmd/salonhub-stub
// serves it standalone for local development. It is not the production
// backend; it implements exactly the surface the dashboard consumes.
package stub

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	db  *gorm.DB
	jwt *jwtService
}

func New(db *gorm.DB, jwtSecret string) (*Server, error) {
	models := []any{
		&userRow{},
		&salonRow{},
		&serviceRow{},
		&bookingRow{},
		&resetCodeRow{},
		&notificationSettingsRow{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return nil, err
		}
	}
	return &Server{db: db, jwt: newJWTService(jwtSecret, 24*time.Hour)}, nil
}

// DB exposes the underlying handle so tests can arrange fixtures.
func (s *Server) DB() *gorm.DB { return s.db }

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	root := r.Group("/api")

	// Public auth endpoints.
	root.POST("/auth/login", s.login)
	root.POST("/auth/register", s.register)
	root.POST("/auth/forgot-password", s.forgotPassword)
	root.POST("/auth/verify-password-reset-otp", s.verifyResetOTP)
	root.POST("/auth/reset-password", s.resetPassword)

	authed := root.Group("")
	authed.Use(authRequired(s.jwt))
	{
		authed.GET("/auth/me", s.me)
		authed.POST("/auth/logout", s.logout)
		authed.GET("/auth/notification-settings", s.notificationSettings)
		authed.PUT("/auth/notification-settings", s.updateNotificationSettings)
	}

	owner := root.Group("/salon-owner")
	owner.Use(authRequired(s.jwt), requireRole("salon_owner"))
	{
		owner.GET("/salons", s.ownerSalons)
		owner.POST("/salons", s.ownerCreateSalon)
		owner.GET("/salons/:id", s.ownerSalon)
		owner.PUT("/salons/:id", s.ownerUpdateSalon)
		owner.GET("/salons/:id/bookings", s.ownerSalonBookings)
		owner.GET("/salons/:id/analytics", s.ownerSalonAnalytics)
		owner.PUT("/bookings/:id/status", s.updateBookingStatus)
	}

	services := root.Group("/services")
	services.Use(authRequired(s.jwt), requireRole("salon_owner", "admin"))
	{
		services.GET("", s.listServices)
		services.POST("", s.createService)
		services.GET("/:id", s.getService)
		services.PUT("/:id", s.updateService)
		services.DELETE("/:id", s.deleteService)
	}

	admin := root.Group("/admin")
	admin.Use(authRequired(s.jwt), requireRole("admin"))
	{
		admin.GET("/salons", s.adminSalons)
		admin.PUT("/salons/:id/status", s.adminUpdateSalonStatus)
		admin.DELETE("/salons/:id", s.adminDeleteSalon)
		admin.GET("/bookings", s.adminBookings)
		admin.GET("/users", s.adminUsers)
		admin.PUT("/users/:id", s.adminUpdateUser)
		admin.PUT("/users/:id/role", s.adminUpdateUserRole)
		admin.DELETE("/users/:id", s.adminDeleteUser)
	}

	analytics := root.Group("/analytics")
	analytics.Use(authRequired(s.jwt), requireRole("admin"))
	{
		analytics.GET("/system", s.systemAnalytics)
		analytics.GET("/users", s.userAnalytics)
		analytics.GET("/bookings", s.bookingAnalytics)
		analytics.GET("/salons", s.salonAnalytics)
	}

	return r
}

// pageParams reads page/limit query parameters with the given default
// page size.
func pageParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page = atoiDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit = atoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

func atoiDefault(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	return n
}
