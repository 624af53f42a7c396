package models

import "time"

type Review struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID   int       `json:"movie_id" gorm:"not null;index:idx_reviews_movie_created,priority:1"`
	Movie     *Movie    `json:"-" gorm:"foreignKey:MovieID;references:ID;constraint:OnDelete:CASCADE"`
	UserID    int       `json:"user_id" gorm:"not null;index:idx_reviews_user_created,priority:1"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_reviews_movie_created,priority:2;index:idx_reviews_user_created,priority:2"`
}
