package dto

import "cinevault-backend/models"

type MovieRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ReleaseDate Date   `json:"releaseDate"`
	Genre       string `json:"genre"`
	Director    string `json:"director"`
}

type MovieResponse struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ReleaseDate   Date    `json:"releaseDate"`
	Genre         string  `json:"genre"`
	Director      string  `json:"director"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// Apply overwrites every mutable field of movie. Zero values clear the
// previous contents.
func (r MovieRequest) Apply(movie *models.Movie) {
	movie.Title = r.Title
	movie.Description = r.Description
	movie.ReleaseDate = r.ReleaseDate.Datatypes()
	movie.Genre = r.Genre
	movie.Director = r.Director
}

// NewMovieResponse expects movie.Reviews to be preloaded.
func NewMovieResponse(movie *models.Movie) MovieResponse {
	return MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		ReleaseDate:   FromDatatypes(movie.ReleaseDate),
		Genre:         movie.Genre,
		Director:      movie.Director,
		AverageRating: movie.AverageRating(),
		ReviewCount:   movie.ReviewCount(),
	}
}
