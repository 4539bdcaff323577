package models

import "time"

// Bookmark 收藏记录，对应 bookmarks
// 唯一键: user_id + tuit_id，与点赞/点踩状态无关
type Bookmark struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_bookmarks_user_tuit,priority:1" json:"user_id"`
	TuitID    int64     `gorm:"column:tuit_id;not null;uniqueIndex:uk_bookmarks_user_tuit,priority:2;index:idx_bookmarks_tuit" json:"tuit_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Tuit *Tuit `gorm:"foreignKey:TuitID;constraint:OnDelete:CASCADE" json:"tuit,omitempty"`
}

func (Bookmark) TableName() string { return "bookmarks" }

func (b *Bookmark) Pair() (int64, int64) { return b.UserID, b.TuitID }

func (b *Bookmark) SetPair(id, userID, tuitID int64) {
	b.ID, b.UserID, b.TuitID = id, userID, tuitID
}

func (b *Bookmark) Attach(user *User, tuit *Tuit) {
	b.User, b.Tuit = user, tuit
}
