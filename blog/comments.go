package blog

import (
	"github.com/blogicum/blogicum/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateComment appends a comment by author to the post. The target post
// must exist (ErrNotFound otherwise); author and post references are set
// here, never from input.
func CreateComment(db *gorm.DB, postId uint, author *model.User, text string) (*model.Comment, error) {
	var exists int64
	if err := db.Model(&model.Post{}).Where("id = ?", postId).Count(&exists).Error; err != nil {
		return nil, errors.Wrap(err, "look up commented post")
	}
	if exists != 1 {
		return nil, ErrNotFound
	}

	comment := model.Comment{
		Text:     text,
		PostID:   postId,
		AuthorID: author.Id,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, errors.Wrap(err, "create comment")
	}
	return &comment, nil
}

// UpdateComment rewrites the comment's text if the ownership guard allows
// it. On Denied the comment is untouched and the verdict points at the
// parent post's detail view.
func UpdateComment(db *gorm.DB, commentId uint, actor *model.User, text string) (Verdict, *model.Comment, error) {
	verdict, comment, err := GuardComment(db, commentId, actor)
	if err != nil || verdict.Decision != Allowed {
		return verdict, nil, err
	}
	comment.Text = text
	if err := db.Save(comment).Error; err != nil {
		return verdict, nil, errors.Wrap(err, "update comment")
	}
	return verdict, comment, nil
}

// DeleteComment removes the comment if the ownership guard allows it.
func DeleteComment(db *gorm.DB, commentId uint, actor *model.User) (Verdict, error) {
	verdict, comment, err := GuardComment(db, commentId, actor)
	if err != nil || verdict.Decision != Allowed {
		return verdict, err
	}
	if err := db.Delete(comment).Error; err != nil {
		return verdict, errors.Wrap(err, "delete comment")
	}
	return verdict, nil
}
