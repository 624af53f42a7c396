package services

import (
	"cinevault-backend/dto"
	"cinevault-backend/models"

	"gorm.io/gorm"
)

func ListUsers(tx *gorm.DB) ([]dto.UserResponse, error) {
	var users []models.User
	if err := tx.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, nil
}

func GetUser(tx *gorm.DB, id int) (dto.UserResponse, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		return dto.UserResponse{}, notFound(err)
	}
	return dto.NewUserResponse(&user), nil
}

func CreateUser(tx *gorm.DB, req dto.UserRequest) (models.User, error) {
	var user models.User
	if err := req.Apply(&user); err != nil {
		return models.User{}, err
	}
	if err := tx.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func UpdateUser(tx *gorm.DB, id int, req dto.UserRequest) error {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		return notFound(err)
	}
	if err := req.Apply(&user); err != nil {
		return err
	}
	return tx.Save(&user).Error
}

func DeleteUser(tx *gorm.DB, id int) error {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		return notFound(err)
	}
	return tx.Delete(&user).Error
}
