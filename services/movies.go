package services

import (
	"cinevault-backend/dto"
	"cinevault-backend/models"

	"gorm.io/gorm"
)

func ListMovies(tx *gorm.DB) ([]dto.MovieResponse, error) {
	var movies []models.Movie
	if err := tx.Preload("Reviews").Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}
	out := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, dto.NewMovieResponse(&movies[i]))
	}
	return out, nil
}

func GetMovie(tx *gorm.DB, id int) (dto.MovieResponse, error) {
	var movie models.Movie
	if err := tx.Preload("Reviews").First(&movie, id).Error; err != nil {
		return dto.MovieResponse{}, notFound(err)
	}
	return dto.NewMovieResponse(&movie), nil
}

func CreateMovie(tx *gorm.DB, req dto.MovieRequest) (models.Movie, error) {
	var movie models.Movie
	req.Apply(&movie)
	if err := tx.Create(&movie).Error; err != nil {
		return models.Movie{}, err
	}
	return movie, nil
}

func UpdateMovie(tx *gorm.DB, id int, req dto.MovieRequest) error {
	var movie models.Movie
	if err := tx.First(&movie, id).Error; err != nil {
		return notFound(err)
	}
	req.Apply(&movie)
	return tx.Save(&movie).Error
}

func DeleteMovie(tx *gorm.DB, id int) error {
	var movie models.Movie
	if err := tx.First(&movie, id).Error; err != nil {
		return notFound(err)
	}
	return tx.Delete(&movie).Error
}
