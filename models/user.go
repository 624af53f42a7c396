package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID       int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string   `json:"username" gorm:"not null"`
	Email    string   `json:"email" gorm:"not null"`
	Password []byte   `json:"-" gorm:"not null"`
	Reviews  []Review `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (user *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	return nil
}

func (user *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(user.Password, []byte(password))
}
