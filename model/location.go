package model

/*

Location is a place a post can be about

Id: primary key
Publishing: shared is_published / created_at fields
Name: place's display name

A location's publish flag only controls whether the location itself is
offered to authors; unlike Category it never hides posts that reference it.
*/

type Location struct {
	Id uint `gorm:"primaryKey" json:"id"`
	Publishing
	Name string `gorm:"size:256" json:"name"`
}
