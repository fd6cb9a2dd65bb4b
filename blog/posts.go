package blog

import (
	"time"

	"github.com/blogicum/blogicum/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostInput carries the author-editable fields of a post. Author and
// created_at are never taken from input; handlers force the author to the
// acting identity. A nil IsPublished means "published", matching the form's
// pre-checked box.
type PostInput struct {
	Title       string    `json:"title" binding:"required,max=256"`
	Text        string    `json:"text" binding:"required"`
	PubDate     time.Time `json:"pub_date" binding:"required"`
	Image       string    `json:"image"`
	CategoryID  *uint     `json:"category_id"`
	LocationID  *uint     `json:"location_id"`
	IsPublished *bool     `json:"is_published"`
}

func (in *PostInput) apply(post *model.Post) {
	post.Title = in.Title
	post.Text = in.Text
	post.PubDate = in.PubDate
	post.Image = in.Image
	post.CategoryID = in.CategoryID
	post.LocationID = in.LocationID
	post.IsPublished = in.IsPublished == nil || *in.IsPublished
}

// CreatePost stores a new post authored by author.
func CreatePost(db *gorm.DB, author *model.User, in *PostInput) (*model.Post, error) {
	post := model.Post{AuthorID: author.Id}
	in.apply(&post)
	if err := db.Create(&post).Error; err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	return &post, nil
}

// UpdatePost rewrites the post's editable fields if the ownership guard
// allows it. On Denied or NotFound the post is left untouched and the
// verdict tells the caller where to navigate.
func UpdatePost(db *gorm.DB, postId uint, actor *model.User, in *PostInput) (Verdict, *model.Post, error) {
	verdict, post, err := GuardPost(db, postId, actor)
	if err != nil || verdict.Decision != Allowed {
		return verdict, nil, err
	}
	in.apply(post)
	if err := db.Save(post).Error; err != nil {
		return verdict, nil, errors.Wrap(err, "update post")
	}
	return verdict, post, nil
}

// DeletePost removes the post if the ownership guard allows it. Comments go
// with it (cascade).
func DeletePost(db *gorm.DB, postId uint, actor *model.User) (Verdict, error) {
	verdict, post, err := GuardPost(db, postId, actor)
	if err != nil || verdict.Decision != Allowed {
		return verdict, err
	}
	if err := db.Delete(post).Error; err != nil {
		return verdict, errors.Wrap(err, "delete post")
	}
	return verdict, nil
}

// PostDetail resolves a single post with related rows and its comments,
// oldest comment first. The author can always open their own post, which is
// how drafts and future-dated posts are previewed; for anyone else the post
// must pass the visibility predicate or the answer is ErrNotFound.
func PostDetail(db *gorm.DB, now time.Time, postId uint, viewer *model.User) (*model.Post, error) {
	var post model.Post
	queryResult := db.
		Preload("Author").Preload("Location").Preload("Category").
		Where("posts.id = ?", postId).
		First(&post)
	if queryResult.Error != nil && !errors.Is(queryResult.Error, gorm.ErrRecordNotFound) {
		return nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return nil, ErrNotFound
	}

	if viewer == nil || viewer.Id != post.AuthorID {
		var visible int64
		err := db.Model(&model.Post{}).Scopes(VisiblePosts(now)).
			Where("posts.id = ?", postId).
			Count(&visible).Error
		if err != nil {
			return nil, errors.Wrap(err, "check post visibility")
		}
		if visible != 1 {
			return nil, ErrNotFound
		}
	}

	err := db.Preload("Author").
		Where("post_id = ?", post.Id).
		Order("created_at asc").
		Find(&post.Comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "load post comments")
	}
	post.CommentCount = int64(len(post.Comments))
	return &post, nil
}
