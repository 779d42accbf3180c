package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"collection-server/auth"
	"collection-server/confs"
	"collection-server/db"
	httpHandler "collection-server/handlers/http"
	"collection-server/middleware"
	"collection-server/repositories"
	"collection-server/usecases"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
	log *slog.Logger
}

func NewServer(database db.Database, cfg *confs.Config, logger *slog.Logger) *Server {
	return &Server{
		app: gin.New(),
		db:  database,
		cfg: cfg,
		log: logger,
	}
}

// Router wires repositories, use cases and handlers onto the route table.
// Tests call this directly; Start calls it before listening.
func (s *Server) Router() *gin.Engine {
	s.app.Use(gin.Recovery())
	s.app.Use(middleware.RequestLogger(s.log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(corsConfig))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	categoryRepo := repositories.NewCategoryPgRepository(s.db)
	collectionRepo := repositories.NewCollectionPgRepository(s.db)
	itemRepo := repositories.NewItemPgRepository(s.db)
	shareRepo := repositories.NewSharePgRepository(s.db)

	// Initialize use cases
	jwtManager := auth.NewJWTManager(s.cfg.JWTSecret, s.cfg.JWTExpiry)
	userUseCase := usecases.NewUserUseCase(userRepo, jwtManager)
	categoryUseCase := usecases.NewCategoryUseCase(categoryRepo)
	collectionUseCase := usecases.NewCollectionUseCase(collectionRepo)
	itemUseCase := usecases.NewItemUseCase(itemRepo, collectionRepo, categoryRepo)
	shareUseCase := usecases.NewShareUseCase(shareRepo, collectionRepo, userRepo)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	categoryHandler := httpHandler.NewCategoryHandler(categoryUseCase)
	collectionHandler := httpHandler.NewCollectionHandler(collectionUseCase)
	itemHandler := httpHandler.NewItemHandler(itemUseCase)
	shareHandler := httpHandler.NewShareHandler(shareUseCase)

	requireAuth := middleware.RequireAuth(jwtManager)

	// Public routes
	s.app.POST("/user/register", userHandler.Register)
	s.app.POST("/user/login", userHandler.Login)
	s.app.GET("/categories", categoryHandler.List)

	// Protected user routes
	user := s.app.Group("/user", requireAuth)
	{
		user.GET("/verify", userHandler.Verify)
		user.GET("/profile", userHandler.Profile)
		user.PUT("/update", userHandler.Update)
	}

	// Collection routes (shares and items nested under a collection)
	collections := s.app.Group("/collections", requireAuth)
	{
		collections.GET("", collectionHandler.List)
		collections.GET("/shares", collectionHandler.ListShared)
		collections.POST("", collectionHandler.Create)
		collections.GET("/:id", collectionHandler.Get)
		collections.PUT("/:id", collectionHandler.Update)
		collections.DELETE("/:id", collectionHandler.Delete)

		collections.GET("/:id/items", itemHandler.List)
		collections.GET("/:id/items/:itemId", itemHandler.Get)
		collections.POST("/:id/items", itemHandler.Create)
		collections.PUT("/:id/items/:itemId", itemHandler.Update)
		collections.DELETE("/:id/items/:itemId", itemHandler.Delete)

		collections.POST("/:id/shares", shareHandler.Create)
		collections.DELETE("/:id/shares/:shareId", shareHandler.Delete)
	}

	return s.app
}

func (s *Server) Start() error {
	router := s.Router()
	s.log.Info("server listening", "port", s.cfg.Port)
	return router.Run("0.0.0.0:" + s.cfg.Port)
}
