package server

import (
	"fmt"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	allowedOrigins := []string{"http://localhost:3000"}
	if s.Config.AccessControlAllowOrigin != "" {
		allowedOrigins = []string{s.Config.AccessControlAllowOrigin}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.defineRoutes(r)
	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: uint(s.messageRateLimit()),
	})
	limitPosting := limitMessagePosting(store)

	apirouter := router.Group("/api")
	apirouter.GET("/conversations/current", s.handleGetCurrentConversation())
	apirouter.GET("/conversations/:id/messages", s.handleGetConversationMessages())
	apirouter.GET("/conversations/:id/messages/grouped", s.handleGetGroupedMessages())
	apirouter.POST("/messages", limitPosting, s.handleCreateMessage())
	apirouter.DELETE("/messages/:id", s.handleDeleteMessage())
	apirouter.POST("/messages/:id/reactions", s.handleCreateReaction())
	apirouter.DELETE("/reactions/:id", s.handleDeleteReaction())
}

func (s *Server) messageRateLimit() int {
	if s.Config != nil && s.Config.MessageRateLimit > 0 {
		return s.Config.MessageRateLimit
	}
	return 30
}
