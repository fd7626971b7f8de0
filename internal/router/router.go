package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler"
	hospitalhandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/hospital"
	reporthandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/report"
	schedulehandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/schedule"
	userhandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/user"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/middleware"
)

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	UploadDir      string
	ReleaseMode    bool
}

type Router struct {
	engine    *gin.Engine
	auth      *middleware.AuthMiddleware
	userH     *userhandler.Handler
	hospitalH *hospitalhandler.Handler
	reportH   *reporthandler.Handler
	scheduleH *schedulehandler.Handler
	h         *handler.Handler
	config    Config
	metrics   *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

// promauto registers into the default registry, which rejects duplicate
// collectors, so the vectors are created once and shared by every Router.
var defaultMetrics = newRouterMetrics()

func New(
	auth *middleware.AuthMiddleware,
	userH *userhandler.Handler,
	hospitalH *hospitalhandler.Handler,
	reportH *reporthandler.Handler,
	scheduleH *schedulehandler.Handler,
	h *handler.Handler,
	config Config,
) *Router {
	if config.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:    gin.New(),
		auth:      auth,
		userH:     userH,
		hospitalH: hospitalH,
		reportH:   reportH,
		scheduleH: scheduleH,
		h:         h,
		config:    config,
		metrics:   defaultMetrics,
	}

	r.engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(30*time.Second),
		middleware.CORS(middleware.DefaultCORSConfig()),
	)

	if config.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst)
		r.engine.Use(limiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Doctors Appointment Booking CRM API"})
	})
	r.engine.GET("/health", r.h.HealthCheck)
	r.engine.GET("/health/live", r.h.LivenessCheck)
	r.engine.GET("/health/ready", r.h.ReadinessCheck)
	r.engine.GET("/metrics", r.h.MetricsHandler)
	r.engine.Static("/uploads", r.config.UploadDir)

	api := r.engine.Group("/api")

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())

	r.userH.RegisterRoutes(api, protected)
	r.hospitalH.RegisterRoutes(protected)
	r.reportH.RegisterRoutes(protected)
	r.scheduleH.RegisterRoutes(protected)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func newRouterMetrics() *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
