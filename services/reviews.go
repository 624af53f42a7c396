package services

import (
	"cinevault-backend/dto"
	"cinevault-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListReviews(tx *gorm.DB) ([]dto.ReviewResponse, error) {
	var reviews []models.Review
	if err := tx.Preload("Movie").Preload("User").Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, dto.NewReviewResponse(&reviews[i]))
	}
	return out, nil
}

func GetReview(tx *gorm.DB, id int) (dto.ReviewResponse, error) {
	var review models.Review
	if err := tx.Preload("Movie").Preload("User").First(&review, id).Error; err != nil {
		return dto.ReviewResponse{}, notFound(err)
	}
	return dto.NewReviewResponse(&review), nil
}

func CreateReview(tx *gorm.DB, req dto.ReviewRequest) (models.Review, error) {
	var review models.Review
	req.Apply(&review)
	if err := tx.Omit(clause.Associations).Create(&review).Error; err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func UpdateReview(tx *gorm.DB, id int, req dto.ReviewRequest) error {
	var review models.Review
	if err := tx.First(&review, id).Error; err != nil {
		return notFound(err)
	}
	req.Apply(&review)
	return tx.Omit(clause.Associations).Save(&review).Error
}

func DeleteReview(tx *gorm.DB, id int) error {
	var review models.Review
	if err := tx.First(&review, id).Error; err != nil {
		return notFound(err)
	}
	return tx.Delete(&review).Error
}
