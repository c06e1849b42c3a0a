package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pulse-social/pulse-api/docs"
	"github.com/pulse-social/pulse-api/internal/api/handler"
	"github.com/pulse-social/pulse-api/internal/api/middleware"
	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
	"github.com/pulse-social/pulse-api/internal/core/service"
	"github.com/pulse-social/pulse-api/internal/infrastructure/config"
	mongodb "github.com/pulse-social/pulse-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pulse-social/pulse-api/internal/infrastructure/db/redis"
	"github.com/pulse-social/pulse-api/internal/infrastructure/queue"
)

// Repositories bundles the Mongo-backed persistence layer so index creation
// and wiring share one construction site.
type Repositories struct {
	Users         *mongodb.UserRepository
	Posts         *mongodb.PostRepository
	Comments      *mongodb.CommentRepository
	Likes         *mongodb.LikeRepository
	Follows       *mongodb.FollowRepository
	Notifications *mongodb.NotificationRepository
	Media         *mongodb.MediaRepository
	Files         *mongodb.FileRepository
}

// NewRepositories constructs every repository on the given database.
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:         mongodb.NewUserRepository(db),
		Posts:         mongodb.NewPostRepository(db),
		Comments:      mongodb.NewCommentRepository(db),
		Likes:         mongodb.NewLikeRepository(db),
		Follows:       mongodb.NewFollowRepository(db),
		Notifications: mongodb.NewNotificationRepository(db),
		Media:         mongodb.NewMediaRepository(db),
		Files:         mongodb.NewFileRepository(db),
	}
}

// EnsureIndexes creates all MongoDB indexes. Called once at startup.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	for _, ensure := range []func(context.Context) error{
		r.Users.EnsureIndexes,
		r.Posts.EnsureIndexes,
		r.Comments.EnsureIndexes,
		r.Likes.EnsureIndexes,
		r.Follows.EnsureIndexes,
		r.Notifications.EnsureIndexes,
		r.Media.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}
	return nil
}

// NewRouter builds the Echo instance with all routes registered. The returned
// dispatcher must be started by the caller before serving traffic.
func NewRouter(repos *Repositories, db *mongo.Database, rdb *redis.Client, store ports.ObjectStorage, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pulse"))

	// --- Dependencies ---
	registry := redisdb.NewTokenRegistry(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(repos.Users, tokenService, registry, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	permissionService := service.NewPermissionService(repos.Posts)
	userService := service.NewUserService(repos.Users, log)
	fileService := service.NewFileService(store, repos.Files, log)
	postService := service.NewPostService(repos.Posts, repos.Users, repos.Files, repos.Follows, log)
	notificationService := service.NewNotificationService(repos.Notifications, repos.Users, repos.Posts, repos.Comments, repos.Likes, repos.Follows)

	dispatcher := queue.NewDispatcher(0, notificationService, log)

	commentService := service.NewCommentService(repos.Comments, repos.Posts, repos.Users, dispatcher)
	likeService := service.NewLikeService(repos.Likes, repos.Posts, repos.Users, dispatcher)
	followService := service.NewFollowService(repos.Follows, repos.Users, dispatcher)
	mediaService := service.NewMediaService(repos.Media, repos.Posts)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, permissionService)
	postHandler := handler.NewPostHandler(postService, permissionService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	followHandler := handler.NewFollowHandler(followService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	fileHandler := handler.NewFileHandler(fileService)

	auth := middleware.Auth(tokenService, "/api/auth/check")
	requireAuth := middleware.RequireAuth()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	e.Use(auth)

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth", authHandler.Login)
	apiGroup.POST("/auth/refresh", authHandler.Refresh)
	apiGroup.GET("/auth/check", authHandler.Check)
	apiGroup.POST("/auth/logout", authHandler.Logout)

	// --- Users ---
	users := apiGroup.Group("/users")
	users.POST("", userHandler.Register)
	users.GET("", userHandler.List, requireAuth, adminOnly)
	users.GET("/:id", userHandler.Get, requireAuth)
	users.GET("/username/:username", userHandler.GetByUsername, requireAuth)
	users.GET("/email/:email", userHandler.GetByEmail, requireAuth)
	users.PUT("/:id", userHandler.Update, requireAuth)
	users.PUT("/:id/password", userHandler.ChangePassword, requireAuth)
	users.PUT("/:id/visibility", userHandler.SetVisibility, requireAuth)
	users.DELETE("/:id", userHandler.Delete, requireAuth)

	// --- Posts ---
	posts := apiGroup.Group("/posts", requireAuth)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.GET("/user/:id", postHandler.ListByUser)
	posts.GET("/username/:username", postHandler.ListByUsername)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Comments ---
	comments := apiGroup.Group("/comments", requireAuth)
	comments.POST("", commentHandler.Create)
	comments.GET("", commentHandler.List)
	comments.GET("/post/:id", commentHandler.ListByPost)
	comments.GET("/user/:id", commentHandler.ListByUser)
	comments.DELETE("/:id", commentHandler.Delete)

	// --- Likes ---
	likes := apiGroup.Group("/likes", requireAuth)
	likes.POST("", likeHandler.Create)
	likes.GET("/post/:id", likeHandler.ListByPost)
	likes.GET("/user/:id", likeHandler.ListByUser)
	likes.DELETE("/:id", likeHandler.Delete)

	// --- Follows ---
	follows := apiGroup.Group("/follows", requireAuth)
	follows.POST("", followHandler.Create)
	follows.DELETE("/:id", followHandler.Delete)
	follows.GET("/followers/:id", followHandler.Followers)
	follows.GET("/following/:id", followHandler.Following)

	// --- Notifications ---
	notifications := apiGroup.Group("/notifications", requireAuth)
	notifications.POST("", notificationHandler.Create)
	notifications.GET("/:id", notificationHandler.Get)
	notifications.GET("/user/:id", notificationHandler.ListByUser)
	notifications.GET("/user/:id/unread", notificationHandler.ListUnreadByUser)
	notifications.GET("/user/:id/count", notificationHandler.CountByUser)
	notifications.GET("/user/:id/unread/count", notificationHandler.CountUnreadByUser)
	notifications.PUT("/:id", notificationHandler.Update)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.Delete)
	notifications.DELETE("/user/:id", notificationHandler.DeleteByUser)

	// --- Media ---
	media := apiGroup.Group("/media", requireAuth)
	media.POST("", mediaHandler.Create)
	media.GET("/post/:id", mediaHandler.ListByPost)

	// --- Files ---
	e.POST("/files", fileHandler.Upload, requireAuth)
	e.GET("/files/:id", fileHandler.Download)
	e.DELETE("/files/:id", fileHandler.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
