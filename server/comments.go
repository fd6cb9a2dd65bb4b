package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/blog"
	"github.com/blogicum/blogicum/server/middlewares"
)

type commentInput struct {
	Text string `json:"text" binding:"required"`
}

func commentIdParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("comment_id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// CreateComment appends a comment to a post and navigates back to the post.
func (s *Server) CreateComment(c *gin.Context) {
	author := middlewares.CurrentUser(c)
	if author == nil {
		redirectToLogin(c)
		return
	}

	postId, ok := postIdParam(c)
	if !ok {
		abortNotFound(c)
		return
	}

	var in commentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadRequest(c, err)
		return
	}

	_, err := blog.CreateComment(s.db, postId, author, in.Text)
	if err == blog.ErrNotFound {
		abortNotFound(c)
		return
	}
	if err != nil {
		abortInternal(c, err)
		return
	}
	redirectToPost(c, postId)
}

// UpdateComment rewrites a comment's text. Only its author may; anyone else
// is sent to the parent post without the comment changing.
func (s *Server) UpdateComment(c *gin.Context) {
	actor := middlewares.CurrentUser(c)
	if actor == nil {
		redirectToLogin(c)
		return
	}

	commentId, ok := commentIdParam(c)
	if !ok {
		abortNotFound(c)
		return
	}

	var in commentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadRequest(c, err)
		return
	}

	verdict, _, err := blog.UpdateComment(s.db, commentId, actor, in.Text)
	if err != nil {
		abortInternal(c, err)
		return
	}
	if verdict.Decision == blog.NotFound {
		abortNotFound(c)
		return
	}
	redirectToPost(c, verdict.PostId)
}

// DeleteComment removes a comment under the same ownership rule.
func (s *Server) DeleteComment(c *gin.Context) {
	actor := middlewares.CurrentUser(c)
	if actor == nil {
		redirectToLogin(c)
		return
	}

	commentId, ok := commentIdParam(c)
	if !ok {
		abortNotFound(c)
		return
	}

	verdict, err := blog.DeleteComment(s.db, commentId, actor)
	if err != nil {
		abortInternal(c, err)
		return
	}
	if verdict.Decision == blog.NotFound {
		abortNotFound(c)
		return
	}
	redirectToPost(c, verdict.PostId)
}
