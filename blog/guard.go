package blog

import (
	"github.com/blogicum/blogicum/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Decision int

const (
	// Allowed: the actor authored the target, mutation may proceed.
	Allowed Decision = iota
	// Denied: someone else's content. The caller must not mutate and should
	// navigate to the read-only detail view at Verdict.PostId instead of
	// raising an error.
	Denied
	// NotFound: the target does not exist.
	NotFound
)

// Verdict is the ownership guard's answer. PostId is the detail page of the
// owning post (for a comment, its parent post); it is zero only on NotFound.
type Verdict struct {
	Decision Decision
	PostId   uint
}

// GuardPost decides whether actor may update or delete the post. The guard
// is the only path to mutation; handlers map Denied to a redirect, never to
// a hard error.
func GuardPost(db *gorm.DB, postId uint, actor *model.User) (Verdict, *model.Post, error) {
	var post model.Post
	queryResult := db.Where("id = ?", postId).First(&post)
	if queryResult.Error != nil && !errors.Is(queryResult.Error, gorm.ErrRecordNotFound) {
		return Verdict{}, nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return Verdict{Decision: NotFound}, nil, nil
	}
	if actor == nil || actor.Id != post.AuthorID {
		return Verdict{Decision: Denied, PostId: post.Id}, nil, nil
	}
	return Verdict{Decision: Allowed, PostId: post.Id}, &post, nil
}

// GuardComment decides whether actor may update or delete the comment.
// Denial redirects to the parent post's detail view.
func GuardComment(db *gorm.DB, commentId uint, actor *model.User) (Verdict, *model.Comment, error) {
	var comment model.Comment
	queryResult := db.Where("id = ?", commentId).First(&comment)
	if queryResult.Error != nil && !errors.Is(queryResult.Error, gorm.ErrRecordNotFound) {
		return Verdict{}, nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return Verdict{Decision: NotFound}, nil, nil
	}
	if actor == nil || actor.Id != comment.AuthorID {
		return Verdict{Decision: Denied, PostId: comment.PostID}, nil, nil
	}
	return Verdict{Decision: Allowed, PostId: comment.PostID}, &comment, nil
}
