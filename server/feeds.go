package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/blog"
	"github.com/blogicum/blogicum/server/middlewares"
)

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Index lists all publicly visible posts, newest pub_date first.
func (s *Server) Index(c *gin.Context) {
	feed, err := blog.IndexFeed(s.db, time.Now(), pageParam(c))
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// CategoryFeed lists visible posts of one published category. A missing or
// unpublished category is a 404, same as a missing page.
func (s *Server) CategoryFeed(c *gin.Context) {
	category, feed, err := blog.CategoryFeed(s.db, time.Now(), c.Param("category_slug"), pageParam(c))
	if err == blog.ErrNotFound {
		abortNotFound(c)
		return
	}
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"feed":     feed,
	})
}

// ProfileFeed lists a user's posts. The profile owner sees everything they
// wrote, drafts and future posts included; everyone else sees the public
// subset.
func (s *Server) ProfileFeed(c *gin.Context) {
	viewer := middlewares.CurrentUser(c)
	profile, feed, err := blog.ProfileFeed(s.db, time.Now(), c.Param("username"), viewer, pageParam(c))
	if err == blog.ErrNotFound {
		abortNotFound(c)
		return
	}
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"feed":    feed,
	})
}
