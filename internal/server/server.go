package server

import (
	"context"
	"net/http"

	"turnero/internal/auth"
	"turnero/internal/booking"
	"turnero/internal/calendar"
	"turnero/internal/config"
	"turnero/internal/email"
	"turnero/internal/membership"
	"turnero/internal/slot"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router   *gin.Engine
	httpSrv  *http.Server
	db       *sqlx.DB
	config   *config.Config
	bookings booking.Service
}

// New wires repositories, services and routes. redisClient may be nil; the
// calendar then reads straight from the database.
func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, redisClient *redis.Client) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	var cache *calendar.Cache
	var invalidator slot.CacheInvalidator
	if redisClient != nil {
		cache = calendar.NewCache(redisClient, calendar.DefaultCacheTTL)
		invalidator = cache
	}

	slotRepo := slot.NewRepository(db)
	slotService := slot.NewService(slotRepo, loc, invalidator)
	slotHandler := slot.NewHandler(slotService, loc)

	memberRepo := membership.NewRepository(db)
	membershipHandler := membership.NewHandler(memberRepo, loc)

	bookingRepo := booking.NewRepository(db, loc)
	bookingService := booking.NewService(bookingRepo, memberRepo, emailService)
	bookingHandler := booking.NewHandler(bookingService)

	calendarRepo := calendar.NewRepository(db)
	calendarService := calendar.NewService(slotRepo, calendarRepo, bookingService, cache, loc)
	calendarHandler := calendar.NewHandler(calendarService, loc)

	authMiddleware := auth.Middleware(cfg.JWTSecret)

	// The calendar is scoped, not gated: anonymous callers see availability.
	router.GET("/calendar", auth.OptionalMiddleware(cfg.JWTSecret), calendarHandler.Calendar)
	router.GET("/plans", membershipHandler.ListPlans)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/bookings/mine", calendarHandler.ListMine)
		protected.GET("/membership/me", membershipHandler.MyMembership)
		protected.POST("/slots/:id/book", bookingHandler.Book)
		protected.POST("/slots/:id/cancel", bookingHandler.Cancel)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireStaff())
	{
		admin.POST("/slots/generate", slotHandler.GenerateWeek)
		admin.POST("/slots", slotHandler.CreateSingle)
		admin.POST("/slots/:id/book", bookingHandler.BookOnBehalf)
		admin.POST("/slots/:id/cancel", bookingHandler.CancelOnBehalf)
		admin.GET("/reports/occupancy", calendarHandler.Occupancy)
		admin.GET("/test-email", TestEmail(emailService))
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router:   router,
		db:       db,
		config:   cfg,
		bookings: bookingService,
	}, nil
}

// Bookings exposes the booking engine for the periodic finalize trigger.
func (s *Server) Bookings() booking.Service {
	return s.bookings
}

func (s *Server) Start(port string) error {
	s.httpSrv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
