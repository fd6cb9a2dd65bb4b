package model

import "time"

/*

Session is an opaque login token handed out at login and presented back on
every authenticated request

Token: primary key, a random uuid
UserID:
User: owner of the session, "belongs-to" relation, cascade-deleted with the
      user
CreatedAt: time when entity is created
ExpiresAt: sessions past this moment resolve to the anonymous identity
*/

type Session struct {
	Token     string    `gorm:"primaryKey;size:36" json:"token"`
	UserID    uint      `json:"user_id"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
