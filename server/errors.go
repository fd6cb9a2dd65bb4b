package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/utils"
	. "github.com/blogicum/blogicum/utils/log"
)

func abortNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"code": utils.ErrorNotFound,
		"msg":  "not found",
	})
}

func abortBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code": utils.ErrorBadRequest,
		"msg":  err.Error(),
	})
}

func abortInternal(c *gin.Context, err error) {
	Log.Error("request failed: ", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code": utils.ErrorInternal,
		"msg":  "internal error",
	})
}

// Navigational redirects. Denied mutations and post-mutation navigation are
// 302s to the read views, never hard errors.

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/auth/login")
}

func redirectToPost(c *gin.Context, postId uint) {
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postId))
}

func redirectToProfile(c *gin.Context, username string) {
	c.Redirect(http.StatusFound, "/profile/"+username)
}

func redirectToIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
