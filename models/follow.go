package models

import "time"

type Follow struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follows_pair,priority:1" json:"follower_id"`                            // 关注人
	FolloweeID int64     `gorm:"column:followee_id;not null;uniqueIndex:uk_follows_pair,priority:2;index:idx_follows_followee" json:"followee_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`

	Follower *User `gorm:"-" json:"follower,omitempty"`
	Followee *User `gorm:"-" json:"followee,omitempty"`
}

func (Follow) TableName() string {
	return "follows"
}
