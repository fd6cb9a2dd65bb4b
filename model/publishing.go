package model

import "time"

/*

Publishing carries the fields shared by every publishable entity (Post,
Category, Location). It is embedded into the owning struct rather than
inherited, so each table gets its own is_published / created_at columns.

IsPublished: unchecking hides the entity from all public listings. New posts
             are published unless the author says otherwise; that default
             lives in the create paths, no column default, so an explicit
             false always sticks
CreatedAt: time when entity is created, write-once

*/

type Publishing struct {
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
}
