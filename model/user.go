package model

import "time"

/*

User is an authenticated identity

Id: primary key
CreatedAt: time when entity is created
Username: unique login and profile handle, profiles are addressed by username
FirstName, LastName, Email: profile fields the user manages themselves
PasswordHash: bcrypt hash of the user's password, never serialized

Posts: all posts the user authored, "has-many" relation, cascade-deleted with
       the user
*/

type User struct {
	Id           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
	Username     string    `gorm:"uniqueIndex;size:150" json:"username"`
	FirstName    string    `gorm:"size:150" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	Email        string    `gorm:"size:254" json:"email"`
	PasswordHash string    `json:"-"`

	Posts []*Post `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"posts,omitempty"`
}
