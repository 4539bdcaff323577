package models

import "time"

type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_users_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;default:''" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
