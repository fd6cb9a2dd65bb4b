package model

/*

Category is a named grouping of posts with its own publish flag

Id: primary key
Publishing: shared is_published / created_at fields

Title: category's display name
Description: free-form description shown on the category page
Slug: URL-safe unique identifier, categories are addressed by slug and never
      by numeric id

Posts: all posts filed under this category, "has-many" relation, deleting the
       category keeps the posts and nulls their reference

An unpublished category hides every post filed under it from public listings,
even when the posts themselves are published.
*/

type Category struct {
	Id uint `gorm:"primaryKey" json:"id"`
	Publishing
	Title       string `gorm:"size:256" json:"title"`
	Description string `json:"description"`
	Slug        string `gorm:"uniqueIndex;size:64" json:"slug"`

	Posts []*Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"posts,omitempty"`
}
