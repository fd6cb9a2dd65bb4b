package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/model"
	"github.com/blogicum/blogicum/server/middlewares"
	"github.com/blogicum/blogicum/utils"
)

// sessionDuration is how long a login is good for.
const sessionDuration = 24 * time.Hour

type registrationInput struct {
	Username  string `json:"username" binding:"required,max=150"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. Usernames are unique; a taken one is a
// conflict, not an internal error.
func (s *Server) Register(c *gin.Context) {
	var in registrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadRequest(c, err)
		return
	}

	var taken int64
	if err := s.db.Model(&model.User{}).Where("username = ?", in.Username).Count(&taken).Error; err != nil {
		abortInternal(c, err)
		return
	}
	if taken != 0 {
		c.JSON(http.StatusConflict, gin.H{
			"code": utils.ErrorConflict,
			"msg":  "username already taken",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		abortInternal(c, err)
		return
	}

	user := model.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// LoginPage is the navigation target for anonymous mutation attempts.
func (s *Server) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "login required"})
}

// Login verifies the password and hands out a fresh session token. Earlier
// sessions of the same user are revoked, one live session per user.
func (s *Server) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadRequest(c, err)
		return
	}

	var user model.User
	queryResult := s.db.Where("username = ?", in.Username).First(&user)
	if queryResult.Error != nil && !errors.Is(queryResult.Error, gorm.ErrRecordNotFound) {
		abortInternal(c, queryResult.Error)
		return
	}
	if queryResult.RowsAffected != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code": utils.ErrorTokenAuthFail,
			"msg":  "unknown username or wrong password",
		})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code": utils.ErrorTokenAuthFail,
			"msg":  "unknown username or wrong password",
		})
		return
	}

	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    user.Id,
		ExpiresAt: time.Now().Add(sessionDuration),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.Id).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// Logout revokes the caller's sessions.
func (s *Server) Logout(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		redirectToLogin(c)
		return
	}
	if err := s.db.Where("user_id = ?", user.Id).Delete(&model.Session{}).Error; err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "logged out"})
}

type profileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// UpdateProfile edits the caller's own profile fields and navigates to the
// index. There is no path parameter on purpose; the only editable profile is
// your own.
func (s *Server) UpdateProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		redirectToLogin(c)
		return
	}

	var in profileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortBadRequest(c, err)
		return
	}

	updates := map[string]interface{}{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		abortInternal(c, err)
		return
	}
	redirectToIndex(c)
}
