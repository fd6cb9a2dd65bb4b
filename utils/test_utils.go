package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/model"
)

// TestPassword is the password every seeded user can log in with.
const TestPassword = "test_password_1"

// create user with name, do sanity checks and returns it
func TestCreateUserAndValidate(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	// MinCost keeps seeding fast, these hashes protect nothing.
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	require.NotZero(t, user.Id)
	require.False(t, user.CreatedAt.IsZero())
	return &user
}

// create a session for user and return its bearer token
func TestCreateSessionAndValidate(t *testing.T, db *gorm.DB, user *model.User) string {
	t.Helper()

	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    user.Id,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&session).Error)
	return session.Token
}

// create category with slug, do sanity checks and returns it
func TestCreateCategoryAndValidate(t *testing.T, db *gorm.DB, slug string, published bool) *model.Category {
	t.Helper()

	category := model.Category{
		Publishing:  model.Publishing{IsPublished: published},
		Title:       "category " + slug,
		Description: "test category",
		Slug:        slug,
	}
	require.NoError(t, db.Create(&category).Error)
	require.NotZero(t, category.Id)
	return &category
}

// create location, do sanity checks and returns it
func TestCreateLocationAndValidate(t *testing.T, db *gorm.DB, name string) *model.Location {
	t.Helper()

	location := model.Location{
		Publishing: model.Publishing{IsPublished: true},
		Name:       name,
	}
	require.NoError(t, db.Create(&location).Error)
	require.NotZero(t, location.Id)
	return &location
}

// create post by author, do sanity checks and returns it. category may be nil
func TestCreatePostAndValidate(t *testing.T, db *gorm.DB, author *model.User, category *model.Category, pubDate time.Time, published bool) *model.Post {
	t.Helper()

	post := model.Post{
		Publishing: model.Publishing{IsPublished: published},
		Title:      "post by " + author.Username,
		Text:       "test post",
		PubDate:    pubDate,
		AuthorID:   author.Id,
	}
	if category != nil {
		post.CategoryID = &category.Id
	}
	require.NoError(t, db.Create(&post).Error)
	require.NotZero(t, post.Id)
	return &post
}

// create comment on post by author, do sanity checks and returns it
func TestCreateCommentAndValidate(t *testing.T, db *gorm.DB, post *model.Post, author *model.User, text string) *model.Comment {
	t.Helper()

	comment := model.Comment{
		Text:     text,
		PostID:   post.Id,
		AuthorID: author.Id,
	}
	require.NoError(t, db.Create(&comment).Error)
	require.NotZero(t, comment.Id)
	require.False(t, comment.CreatedAt.IsZero())
	return &comment
}
