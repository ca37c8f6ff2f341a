package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/bookbuddy/server/docs" // swag生成的API文档
	applibrary "github.com/bookbuddy/server/internal/application/library"
	appreview "github.com/bookbuddy/server/internal/application/review"
	appsearch "github.com/bookbuddy/server/internal/application/search"
	apptracker "github.com/bookbuddy/server/internal/application/tracker"
	appuser "github.com/bookbuddy/server/internal/application/user"
	"github.com/bookbuddy/server/internal/domain/catalog"
	"github.com/bookbuddy/server/internal/domain/library"
	"github.com/bookbuddy/server/internal/domain/review"
	"github.com/bookbuddy/server/internal/domain/tracker"
	"github.com/bookbuddy/server/internal/domain/user"
	"github.com/bookbuddy/server/internal/infrastructure/config"
	"github.com/bookbuddy/server/internal/infrastructure/openlibrary"
	"github.com/bookbuddy/server/internal/infrastructure/persistence/mysql"
	"github.com/bookbuddy/server/internal/infrastructure/persistence/redis"
	"github.com/bookbuddy/server/internal/interface/http/handler"
	"github.com/bookbuddy/server/internal/interface/http/middleware"
	"github.com/bookbuddy/server/pkg/jwt"
	"github.com/bookbuddy/server/pkg/metrics"
	"github.com/bookbuddy/server/pkg/response"
)

// @title           BookBuddy API
// @version         1.0
// @description     个人图书管理服务：共享目录、用户书架、月度阅读追踪、书评与Open Library搜索
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

// main 主程序入口
// 说明：手动依赖注入（wire.go提供编译期生成的版本）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())
	fmt.Printf("  - Open Library: %s\n", cfg.OpenLibrary.BaseURL)

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	userBookRepo := mysql.NewUserBookRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	trackerRepo := mysql.NewTrackerRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	olClient := openlibrary.NewClient(cfg)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	catalogService := catalog.NewService(bookRepo)
	libraryService := library.NewService(userBookRepo)
	reviewService := review.NewService(reviewRepo)
	trackerService := tracker.NewService(trackerRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	updateProfileUseCase := appuser.NewUpdateProfileUseCase(userService)
	deleteUserUseCase := appuser.NewDeleteUserUseCase(userService, userBookRepo, trackerRepo, txManager)
	addUserBookUseCase := applibrary.NewAddBookUseCase(userService, catalogService, libraryService)
	addFromSearchUseCase := applibrary.NewAddFromSearchUseCase(userService, catalogService, libraryService)
	changeShelfUseCase := applibrary.NewChangeShelfUseCase(libraryService)
	createReviewUseCase := appreview.NewCreateReviewUseCase(userService, catalogService, reviewService)
	createTrackerUseCase := apptracker.NewCreateTrackerUseCase(userService, trackerService, txManager)
	addTrackerBookUseCase := apptracker.NewAddBookUseCase(trackerService, trackerRepo, libraryService)
	bulkAddBooksUseCase := apptracker.NewBulkAddBooksUseCase(addTrackerBookUseCase)
	completeBookUseCase := apptracker.NewCompleteBookUseCase(trackerRepo, userBookRepo, txManager)
	searchBooksUseCase := appsearch.NewSearchBooksUseCase(olClient)

	// 接口层
	userHandler := handler.NewUserHandler(
		registerUseCase, loginUseCase, logoutUseCase,
		updateProfileUseCase, deleteUserUseCase, userService,
	)
	bookHandler := handler.NewBookHandler(catalogService)
	userBookHandler := handler.NewUserBookHandler(
		addUserBookUseCase, addFromSearchUseCase, changeShelfUseCase, libraryService,
	)
	reviewHandler := handler.NewReviewHandler(createReviewUseCase, reviewService)
	trackerHandler := handler.NewTrackerHandler(createTrackerUseCase, trackerService)
	trackerBookHandler := handler.NewTrackerBookHandler(
		addTrackerBookUseCase, bulkAddBooksUseCase, completeBookUseCase, trackerService,
	)
	searchHandler := handler.NewSearchHandler(searchBooksUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 7. 注册路由
	registerRoutes(r,
		userHandler, bookHandler, userBookHandler,
		reviewHandler, trackerHandler, trackerBookHandler,
		searchHandler, authMiddleware,
	)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("   用户注册: POST http://localhost%s/api/v1/users/register\n", addr)
	fmt.Printf("   用户登录: POST http://localhost%s/api/v1/users/login\n", addr)
	fmt.Printf("   图书搜索: GET  http://localhost%s/api/v1/search/{关键词}\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	userBookHandler *handler.UserBookHandler,
	reviewHandler *handler.ReviewHandler,
	trackerHandler *handler.TrackerHandler,
	trackerBookHandler *handler.TrackerBookHandler,
	searchHandler *handler.SearchHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus监控指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.GetByID)
			users.GET("/username/:username", userHandler.GetByUsername)
			users.PUT("/:id", authMiddleware.RequireAuth(), userHandler.Update)
			users.DELETE("/:id", authMiddleware.RequireAuth(), userHandler.Delete)
		}

		// 图书目录模块
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.Create)
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.GetByID)
			books.PUT("/:id", bookHandler.Update)
			books.DELETE("/:id", bookHandler.Delete)
		}

		// 书架模块
		userbooks := v1.Group("/userbooks")
		{
			userbooks.POST("", userBookHandler.Add)
			userbooks.POST("/add-from-search", userBookHandler.AddFromSearch)
			userbooks.GET("", userBookHandler.List)
			userbooks.GET("/user/:userId", userBookHandler.ListByUser)
			userbooks.GET("/book/:bookId", userBookHandler.ListByBook)
			userbooks.GET("/:id", userBookHandler.GetByID)
			userbooks.PUT("/:id/shelf", userBookHandler.ChangeShelf)
			userbooks.DELETE("/:id", userBookHandler.Delete)
		}

		// 月度追踪器模块
		trackers := v1.Group("/monthly-tracker")
		{
			trackers.POST("", trackerHandler.Create)
			trackers.GET("/:id", trackerHandler.GetByID)
			trackers.GET("/user/:userId", trackerHandler.ListByUser)
			trackers.GET("/user/:userId/current", trackerHandler.GetCurrent)
			trackers.GET("/user/:userId/month", trackerHandler.GetByMonth)
			trackers.PUT("/:id/goal", trackerHandler.UpdateGoal)
			trackers.DELETE("/:id", trackerHandler.Delete)
			trackers.GET("/:id/progress", trackerHandler.Progress)
		}

		// 追踪器图书模块
		trackerBooks := v1.Group("/monthly-tracker-books")
		{
			trackerBooks.POST("", trackerBookHandler.Add)
			trackerBooks.POST("/bulk", trackerBookHandler.BulkAdd)
			trackerBooks.GET("/tracker/:trackerId", trackerBookHandler.ListByTracker)
			trackerBooks.GET("/tracker/:trackerId/contains/:userBookId", trackerBookHandler.Contains)
			trackerBooks.PUT("/:id/complete", trackerBookHandler.Complete)
			trackerBooks.DELETE("/:id", trackerBookHandler.Delete)
			trackerBooks.DELETE("/tracker/:trackerId/completed", trackerBookHandler.CleanUpCompleted)
		}

		// 书评模块
		reviews := v1.Group("/reviews")
		{
			reviews.POST("", reviewHandler.Create)
			reviews.GET("/book/:bookId", reviewHandler.ListByBook)
			reviews.GET("/book/:bookId/average", reviewHandler.AverageRating)
			reviews.GET("/:id", reviewHandler.GetByID)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}

		// 搜索模块（Open Library）
		search := v1.Group("/search")
		{
			search.GET("/:q", searchHandler.Search)
			search.GET("/title/:q", searchHandler.SearchByTitle)
			search.GET("/author/:q", searchHandler.SearchByAuthor)
		}
	}
}
