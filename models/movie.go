package models

import (
	"gorm.io/datatypes"
)

type Movie struct {
	ID          int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	ReleaseDate datatypes.Date `json:"release_date"`
	Genre       string         `json:"genre" gorm:"size:100"`
	Director    string         `json:"director"`
	Reviews     []Review       `json:"reviews" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// AverageRating is the arithmetic mean of the loaded reviews' ratings, or 0
// when the movie has none. Reviews must be preloaded.
func (movie *Movie) AverageRating() float64 {
	if len(movie.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range movie.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(movie.Reviews))
}

func (movie *Movie) ReviewCount() int {
	return len(movie.Reviews)
}
