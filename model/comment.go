package model

import "time"

/*

Comment is a reader's response to a post

Id: primary key
Text: comment's body in plain text
CreatedAt: time when entity is created, comments on a post are always listed
           oldest first by this field

PostID:
Post: post the comment was left on, "belongs-to" relation, cascade-deleted
      with the post
AuthorID:
Author: user who wrote the comment, "belongs-to" relation, cascade-deleted
        with the author
*/

type Comment struct {
	Id        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
	PostID    uint      `json:"post_id"`
	Post      *Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post,omitempty"`
	AuthorID  uint      `json:"author_id"`
	Author    *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
}
