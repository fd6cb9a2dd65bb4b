package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/blog"
	"github.com/blogicum/blogicum/server/middlewares"
)

// CommentForm is the empty comment-submission descriptor attached to every
// post detail response.
type CommentForm struct {
	Text string `json:"text"`
}

func postIdParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// PostDetail shows one post with its comments, oldest first. Authors can
// open their own hidden posts; for everyone else an invisible post is
// indistinguishable from a missing one.
func (s *Server) PostDetail(c *gin.Context) {
	postId, ok := postIdParam(c)
	if !ok {
		abortNotFound(c)
		return
	}

	viewer := middlewares.CurrentUser(c)
	post, err := blog.PostDetail(s.db, time.Now(), postId, viewer)
	if err == blog.ErrNotFound {
		abortNotFound(c)
		return
	}
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": post.Comments,
		"form":     CommentForm{},
	})
}

// CreatePost stores a new post authored by the logged-in user and navigates
// to their profile.
func (s *Server) CreatePost(c *gin.Context) {
	author := middlewares.CurrentUser(c)
	if author == nil {
		redirectToLogin(c)
		return
	}

	var in blog.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadRequest(c, err)
		return
	}

	if _, err := blog.CreatePost(s.db, author, &in); err != nil {
		abortInternal(c, err)
		return
	}
	redirectToProfile(c, author.Username)
}

// UpdatePost rewrites a post's fields. Only the author may do this; anyone
// else is sent to the post's read-only detail view.
func (s *Server) UpdatePost(c *gin.Context) {
	actor := middlewares.CurrentUser(c)
	if actor == nil {
		redirectToLogin(c)
		return
	}

	postId, ok := postIdParam(c)
	if !ok {
		abortNotFound(c)
		return
	}

	var in blog.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadRequest(c, err)
		return
	}

	verdict, _, err := blog.UpdatePost(s.db, postId, actor, &in)
	if err != nil {
		abortInternal(c, err)
		return
	}
	switch verdict.Decision {
	case blog.NotFound:
		abortNotFound(c)
	case blog.Denied:
		redirectToPost(c, verdict.PostId)
	default:
		redirectToPost(c, verdict.PostId)
	}
}

// DeletePost removes a post and, through the cascade, its comments. Success
// navigates to the author's profile, denial to the post.
func (s *Server) DeletePost(c *gin.Context) {
	actor := middlewares.CurrentUser(c)
	if actor == nil {
		redirectToLogin(c)
		return
	}

	postId, ok := postIdParam(c)
	if !ok {
		abortNotFound(c)
		return
	}

	verdict, err := blog.DeletePost(s.db, postId, actor)
	if err != nil {
		abortInternal(c, err)
		return
	}
	switch verdict.Decision {
	case blog.NotFound:
		abortNotFound(c)
	case blog.Denied:
		redirectToPost(c, verdict.PostId)
	default:
		redirectToProfile(c, actor.Username)
	}
}
