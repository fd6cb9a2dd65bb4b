package model

import "time"

/*

Post is a publishable content item with scheduled visibility

Id: primary key
Publishing: shared is_published / created_at fields

Title: post's title in plain text
Text: post's body in plain text
PubDate: moment the post becomes publicly visible; a future PubDate keeps a
         published post hidden until that moment passes, which is how
         deferred publication works
Image: optional reference to an uploaded image, empty when the post has none

AuthorID:
Author: user who wrote the post, "belongs-to" relation, deleting the author
        deletes the post
LocationID:
Location: optional place the post is about, "belongs-to" relation, deleting
          the location keeps the post and nulls the reference
CategoryID:
Category: optional category the post is filed under, "belongs-to" relation,
          deleting the category keeps the post and nulls the reference

Comments: all comments left on this post, "has-many" relation, removed
          together with the post

CommentCount: listing-only annotation filled by the feed queries, not a column
*/

type Post struct {
	Id uint `gorm:"primaryKey" json:"id"`
	Publishing
	Title      string    `gorm:"size:256" json:"title"`
	Text       string    `json:"text"`
	PubDate    time.Time `json:"pub_date"`
	Image      string    `json:"image"`
	AuthorID   uint      `json:"author_id"`
	Author     *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
	LocationID *uint     `json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`
	CategoryID *uint     `json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`

	Comments []*Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`

	CommentCount int64 `gorm:"-" json:"comment_count"`
}
