// Package server is the thin HTTP adapter over the blog rules: each handler
// resolves path parameters and the acting identity, calls into package blog,
// and maps the outcome to a JSON body or a navigational redirect.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/server/middlewares"
)

// Server carries the handler dependencies. No request state lives here; all
// state is in the database.
type Server struct {
	db *gorm.DB
}

// NewRouter builds the gin engine with the full route table. Extracted from
// main so tests can drive it through httptest.
func NewRouter(db *gorm.DB) *gin.Engine {
	s := &Server{db: db}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middlewares.Identity(db))

	router.GET("/", s.Index)
	router.GET("/category/:category_slug", s.CategoryFeed)
	router.GET("/profile/:username", s.ProfileFeed)

	router.GET("/posts/:post_id", s.PostDetail)
	router.POST("/posts", s.CreatePost)
	router.PUT("/posts/:post_id", s.UpdatePost)
	router.DELETE("/posts/:post_id", s.DeletePost)

	router.POST("/posts/:post_id/comments", s.CreateComment)
	router.PUT("/comments/:comment_id", s.UpdateComment)
	router.DELETE("/comments/:comment_id", s.DeleteComment)

	router.POST("/auth/registration", s.Register)
	router.GET("/auth/login", s.LoginPage)
	router.POST("/auth/login", s.Login)
	router.POST("/auth/logout", s.Logout)
	router.PUT("/profile", s.UpdateProfile)

	return router
}
