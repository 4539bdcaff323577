package models

import "time"

// Dislike 点踩记录
// 对应表 dislikes，唯一键: user_id + tuit_id。同一 (user, tuit) 不会同时存在 Like 和 Dislike
type Dislike struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_dislikes_user_tuit,priority:1" json:"user_id"`
	TuitID    int64     `gorm:"column:tuit_id;not null;uniqueIndex:uk_dislikes_user_tuit,priority:2;index:idx_dislikes_tuit" json:"tuit_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"disliked_by,omitempty"`
	Tuit *Tuit `gorm:"foreignKey:TuitID;constraint:OnDelete:CASCADE" json:"tuit,omitempty"`
}

func (Dislike) TableName() string { return "dislikes" }

func (d *Dislike) Pair() (int64, int64) { return d.UserID, d.TuitID }

func (d *Dislike) SetPair(id, userID, tuitID int64) {
	d.ID, d.UserID, d.TuitID = id, userID, tuitID
}

func (d *Dislike) Attach(user *User, tuit *Tuit) {
	d.User, d.Tuit = user, tuit
}
