package main

import (
	"log"
	"server/auth"
	"server/config"
	"server/db"
	"server/handlers"
	"server/models"
	"server/utils"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be configured")
	}
	db.Init(cfg.MySQLDSN, cfg.SQLiteFile)
	models.Init()

	router := setupRouter(cfg)

	var err error
	if cfg.TLSDomains != "" {
		err = autotls.Run(router, strings.Split(cfg.TLSDomains, ",")...)
	} else {
		err = router.Run(cfg.BindAddress)
	}
	log.Fatalf("Server stopped: %v", err)
}

func setupRouter(cfg *config.Config) *gin.Engine {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if cfg.DebugMode {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(utils.RequestID)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !cfg.DebugMode {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.NoCache)

	tokens := auth.NewTokens(cfg.JWTSecret)
	// Token gate for everything below except registration and login
	authRouter := &auth.Router{Base: router, Tokens: tokens}

	router.GET("/health", handlers.Health)

	// Account handlers
	router.POST("/api/register", handlers.UserRegister)
	router.POST("/api/login", handlers.UserLogin(tokens))
	authRouter.GET("/api/users", handlers.UserList)
	authRouter.GET("/api/users/search", handlers.UserSearch)
	authRouter.GET("/api/admin/users", handlers.UserListAll, auth.PermissionAdmin)
	// Group and membership handlers
	authRouter.POST("/api/groups", handlers.GroupCreate)
	authRouter.GET("/api/groups", handlers.GroupList)
	authRouter.GET("/api/groups/:id", handlers.GroupGet)
	authRouter.PUT("/api/groups/:id", handlers.GroupUpdate)
	authRouter.DELETE("/api/groups/:id", handlers.GroupDelete)
	authRouter.POST("/api/groups/:id/members", handlers.GroupAddMember)
	authRouter.GET("/api/groups/:id/members", handlers.GroupMembers)
	authRouter.DELETE("/api/groups/:id/members/:userId", handlers.GroupRemoveMember)
	authRouter.PUT("/api/groups/:id/members/:userId", handlers.GroupUpdateMemberRole)
	authRouter.GET("/api/groups/:id/meetings", handlers.MeetingGroupList)
	// Meeting handlers
	authRouter.POST("/api/meetings", handlers.MeetingCreate)
	authRouter.GET("/api/meetings", handlers.MeetingList)
	authRouter.GET("/api/meetings/:id", handlers.MeetingGet)
	authRouter.PUT("/api/meetings/:id", handlers.MeetingUpdate)
	authRouter.DELETE("/api/meetings/:id", handlers.MeetingDelete)

	return router
}
