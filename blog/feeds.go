package blog

import (
	"time"

	"github.com/blogicum/blogicum/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostsPerPage is the fixed page size of every listing.
const PostsPerPage = 10

// FeedPage is one page of a listing: posts annotated with comment counts,
// ordered by pub_date descending.
type FeedPage struct {
	Posts   []*model.Post `json:"posts"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Total   int64         `json:"total"`
	HasNext bool          `json:"has_next"`
}

// IndexFeed returns one page of all publicly visible posts.
func IndexFeed(db *gorm.DB, now time.Time, page int) (*FeedPage, error) {
	base := func() *gorm.DB {
		return db.Model(&model.Post{}).Scopes(VisiblePosts(now))
	}
	return paginate(db, base, page)
}

// CategoryFeed returns the category addressed by slug and one page of its
// publicly visible posts. A missing or unpublished category is ErrNotFound.
func CategoryFeed(db *gorm.DB, now time.Time, slug string, page int) (*model.Category, *FeedPage, error) {
	var category model.Category
	queryResult := db.Where("slug = ? AND is_published", slug).First(&category)
	if queryResult.Error != nil && !errors.Is(queryResult.Error, gorm.ErrRecordNotFound) {
		return nil, nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return nil, nil, ErrNotFound
	}

	base := func() *gorm.DB {
		return db.Model(&model.Post{}).Scopes(VisiblePosts(now)).
			Where("posts.category_id = ?", category.Id)
	}
	feed, err := paginate(db, base, page)
	if err != nil {
		return nil, nil, err
	}
	return &category, feed, nil
}

// ProfileFeed returns the profile user addressed by username and one page of
// their posts. When the viewer is the profile owner the visibility predicate
// is bypassed entirely, so drafts and future-dated posts show up; everyone
// else gets the public variant restricted to that author.
func ProfileFeed(db *gorm.DB, now time.Time, username string, viewer *model.User, page int) (*model.User, *FeedPage, error) {
	var profile model.User
	queryResult := db.Where("username = ?", username).First(&profile)
	if queryResult.Error != nil && !errors.Is(queryResult.Error, gorm.ErrRecordNotFound) {
		return nil, nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return nil, nil, ErrNotFound
	}

	var base func() *gorm.DB
	if viewer != nil && viewer.Id == profile.Id {
		base = func() *gorm.DB {
			return db.Model(&model.Post{}).Where("posts.author_id = ?", profile.Id)
		}
	} else {
		base = func() *gorm.DB {
			return db.Model(&model.Post{}).Scopes(VisiblePosts(now)).
				Where("posts.author_id = ?", profile.Id)
		}
	}
	feed, err := paginate(db, base, page)
	if err != nil {
		return nil, nil, err
	}
	return &profile, feed, nil
}

// paginate runs the feed query twice, once for the total and once for the
// requested page. base must return a fresh query each call so the two runs
// don't share a mutated statement.
func paginate(db *gorm.DB, base func() *gorm.DB, page int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "count feed posts")
	}

	var posts []*model.Post
	err := base().
		Preload("Author").Preload("Location").Preload("Category").
		Order("posts.pub_date desc").
		Limit(PostsPerPage).
		Offset((page - 1) * PostsPerPage).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "query feed posts")
	}

	if err := annotateCommentCounts(db, posts); err != nil {
		return nil, err
	}

	return &FeedPage{
		Posts:   posts,
		Page:    page,
		PerPage: PostsPerPage,
		Total:   total,
		HasNext: int64(page*PostsPerPage) < total,
	}, nil
}

// annotateCommentCounts fills Post.CommentCount for every post on the page
// with one grouped query over the comments table.
func annotateCommentCounts(db *gorm.DB, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.Id)
	}

	type postCommentCount struct {
		PostID uint
		Total  int64
	}
	var counts []postCommentCount
	err := db.Model(&model.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", ids).
		Group("post_id").
		Find(&counts).Error
	if err != nil {
		return errors.Wrap(err, "count comments per post")
	}

	byPost := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byPost[c.PostID] = c.Total
	}
	for _, post := range posts {
		post.CommentCount = byPost[post.Id]
	}
	return nil
}
