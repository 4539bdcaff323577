package models

import "time"

// Like 点赞记录
// 对应表 likes，唯一键: user_id + tuit_id；user_id/tuit_id 为外键，推文删除时级联删除
type Like struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_likes_user_tuit,priority:1" json:"user_id"`
	TuitID    int64     `gorm:"column:tuit_id;not null;uniqueIndex:uk_likes_user_tuit,priority:2;index:idx_likes_tuit" json:"tuit_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"liked_by,omitempty"`
	Tuit *Tuit `gorm:"foreignKey:TuitID;constraint:OnDelete:CASCADE" json:"tuit,omitempty"`
}

func (Like) TableName() string { return "likes" }

func (l *Like) Pair() (int64, int64) { return l.UserID, l.TuitID }

func (l *Like) SetPair(id, userID, tuitID int64) {
	l.ID, l.UserID, l.TuitID = id, userID, tuitID
}

func (l *Like) Attach(user *User, tuit *Tuit) {
	l.User, l.Tuit = user, tuit
}
