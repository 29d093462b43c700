package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	answerHTTP "github.com/allisson/forumhub/internal/answer/http"
	authHTTP "github.com/allisson/forumhub/internal/auth/http"
	authUseCase "github.com/allisson/forumhub/internal/auth/usecase"
	courseHTTP "github.com/allisson/forumhub/internal/course/http"
	"github.com/allisson/forumhub/internal/metrics"
	topicHTTP "github.com/allisson/forumhub/internal/topic/http"
	userHTTP "github.com/allisson/forumhub/internal/user/http"
)

// RouterConfig holds everything needed to assemble the API router.
type RouterConfig struct {
	Logger *slog.Logger

	AuthUseCase   authUseCase.UseCase
	AuthHandler   *authHTTP.AuthHandler
	UserHandler   *userHTTP.UserHandler
	CourseHandler *courseHTTP.CourseHandler
	TopicHandler  *topicHTTP.TopicHandler
	AnswerHandler *answerHTTP.AnswerHandler

	CORSEnabled      bool
	CORSAllowOrigins string

	// MeterProvider enables HTTP metrics collection when non-nil.
	MeterProvider    metric.MeterProvider
	MetricsNamespace string

	RateLimitLoginEnabled        bool
	RateLimitLoginRequestsPerSec float64
	RateLimitLoginBurst          int
}

// NewRouter assembles the Gin engine with the full middleware pipeline and
// all API routes. Authentication runs on every request and authorization is
// enforced by the route access rules before any handler executes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(cfg.Logger))
	router.Use(gin.Recovery())

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.Logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	router.Use(authHTTP.AuthenticationMiddleware(cfg.AuthUseCase, cfg.Logger))
	router.Use(authHTTP.AuthorizationMiddleware(authHTTP.DefaultRules(), cfg.Logger))

	router.GET("/health", healthHandler)

	loginHandlers := []gin.HandlerFunc{}
	if cfg.RateLimitLoginEnabled {
		loginHandlers = append(loginHandlers, authHTTP.LoginRateLimitMiddleware(
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			cfg.Logger,
		))
	}
	loginHandlers = append(loginHandlers, cfg.AuthHandler.LoginHandler)
	router.POST("/login", loginHandlers...)

	users := router.Group("/usuarios")
	{
		users.GET("", cfg.UserHandler.ListHandler)
		users.GET("/:id", cfg.UserHandler.GetHandler)
		users.POST("", cfg.UserHandler.CreateHandler)
		users.PUT("/:id", cfg.UserHandler.UpdateHandler)
		users.DELETE("/:id", cfg.UserHandler.DeleteHandler)
	}

	courses := router.Group("/cursos")
	{
		courses.GET("", cfg.CourseHandler.ListHandler)
		courses.GET("/busca", cfg.CourseHandler.SearchHandler)
		courses.GET("/categoria/:categoria", cfg.CourseHandler.ListByCategoryHandler)
		courses.GET("/:id", cfg.CourseHandler.GetHandler)
		courses.POST("", cfg.CourseHandler.CreateHandler)
		courses.PUT("/:id", cfg.CourseHandler.UpdateHandler)
		courses.DELETE("/:id", cfg.CourseHandler.DeleteHandler)
	}

	topics := router.Group("/topicos")
	{
		topics.GET("", cfg.TopicHandler.ListHandler)
		topics.GET("/curso", cfg.TopicHandler.ListByCourseHandler)
		topics.GET("/:id", cfg.TopicHandler.GetHandler)
		topics.POST("", cfg.TopicHandler.CreateHandler)
		topics.PUT("/:id", cfg.TopicHandler.UpdateHandler)
		topics.DELETE("/:id", cfg.TopicHandler.DeleteHandler)
	}

	answers := router.Group("/respostas")
	{
		answers.GET("", cfg.AnswerHandler.ListHandler)
		answers.GET("/topico/:topicoId", cfg.AnswerHandler.ListByTopicHandler)
		answers.GET("/:id", cfg.AnswerHandler.GetHandler)
		answers.POST("", cfg.AnswerHandler.CreateHandler)
		answers.PUT("/:id", cfg.AnswerHandler.UpdateHandler)
		answers.DELETE("/:id", cfg.AnswerHandler.DeleteHandler)
	}

	return router
}

// healthHandler reports liveness.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
