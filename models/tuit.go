package models

import "time"

// Stats 推文互动计数。likes/dislikes 只允许由计数投影写入
type Stats struct {
	Likes    int64 `gorm:"not null;default:0" json:"likes"`
	Dislikes int64 `gorm:"not null;default:0" json:"dislikes"`
	Replies  int64 `gorm:"not null;default:0" json:"replies"`
	Retuits  int64 `gorm:"not null;default:0" json:"retuits"`
}

type Tuit struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Tuit      string    `gorm:"column:tuit;type:varchar(280);not null" json:"tuit"`
	PostedBy  int64     `gorm:"column:posted_by;not null;index:idx_tuits_posted_by" json:"posted_by"`
	PostedOn  time.Time `gorm:"column:posted_on" json:"posted_on"`
	Stats     Stats     `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Author *User `gorm:"-" json:"author,omitempty"`
}

func (Tuit) TableName() string {
	return "tuits"
}
