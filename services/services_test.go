package services

import (
	"testing"
	"time"

	"cinevault-backend/dto"
	"cinevault-backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMovieWithReviews(t *testing.T, db *gorm.DB, ratings ...int) int {
	t.Helper()
	movie, err := CreateMovie(db, dto.MovieRequest{Title: "Heat", Director: "Mann"})
	require.NoError(t, err)
	user, err := CreateUser(db, dto.UserRequest{Username: "alice", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)
	for _, r := range ratings {
		_, err := CreateReview(db, dto.ReviewRequest{MovieID: movie.ID, UserID: user.ID, Rating: r})
		require.NoError(t, err)
	}
	return movie.ID
}

func TestMovieRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	req := dto.MovieRequest{
		Title:       "X",
		Description: "Y",
		ReleaseDate: dto.NewDate(2020, time.January, 1),
		Genre:       "Drama",
		Director:    "Z",
	}

	created, err := CreateMovie(db, req)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := GetMovie(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, "Y", got.Description)
	assert.Equal(t, "2020-01-01", got.ReleaseDate.String())
	assert.Equal(t, "Drama", got.Genre)
	assert.Equal(t, "Z", got.Director)
	assert.Zero(t, got.ReviewCount)
	assert.Zero(t, got.AverageRating)
}

func TestMovieAggregates(t *testing.T) {
	db := testutil.NewDB(t)
	id := seedMovieWithReviews(t, db, 3, 4, 5)

	got, err := GetMovie(db, id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ReviewCount)
	assert.InDelta(t, 4.0, got.AverageRating, 1e-9)

	all, err := ListMovies(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.InDelta(t, 4.0, all[0].AverageRating, 1e-9)
}

func TestUpdateMovieOverwritesEveryField(t *testing.T) {
	db := testutil.NewDB(t)
	created, err := CreateMovie(db, dto.MovieRequest{Title: "Old", Description: "D", Genre: "G", Director: "Dir"})
	require.NoError(t, err)

	require.NoError(t, UpdateMovie(db, created.ID, dto.MovieRequest{Title: "New"}))

	got, err := GetMovie(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Empty(t, got.Description)
	assert.Empty(t, got.Genre)
	assert.Empty(t, got.Director)
}

func TestMissingIDsReturnErrNotFound(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := GetMovie(db, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, UpdateMovie(db, 404, dto.MovieRequest{Title: "x"}), ErrNotFound)
	assert.ErrorIs(t, DeleteMovie(db, 404), ErrNotFound)

	_, err = GetReview(db, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, UpdateReview(db, 404, dto.ReviewRequest{MovieID: 1, UserID: 1}), ErrNotFound)
	assert.ErrorIs(t, DeleteReview(db, 404), ErrNotFound)

	_, err = GetUser(db, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, UpdateUser(db, 404, dto.UserRequest{Username: "u", Email: "e", Password: "p"}), ErrNotFound)
	assert.ErrorIs(t, DeleteUser(db, 404), ErrNotFound)
}

func TestDeleteIsIdempotentInEffect(t *testing.T) {
	db := testutil.NewDB(t)
	created, err := CreateMovie(db, dto.MovieRequest{Title: "Gone"})
	require.NoError(t, err)

	require.NoError(t, DeleteMovie(db, created.ID))
	assert.ErrorIs(t, DeleteMovie(db, created.ID), ErrNotFound)
}

func TestDeleteMovieCascadesToReviews(t *testing.T) {
	db := testutil.NewDB(t)
	id := seedMovieWithReviews(t, db, 5, 1)

	require.NoError(t, DeleteMovie(db, id))

	reviews, err := ListReviews(db)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewIncludesMovieAndUser(t *testing.T) {
	db := testutil.NewDB(t)
	movieID := seedMovieWithReviews(t, db, 4)

	reviews, err := ListReviews(db)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, movieID, reviews[0].MovieID)
	assert.Equal(t, "Heat", reviews[0].MovieTitle)
	assert.Equal(t, "alice", reviews[0].Username)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.False(t, reviews[0].CreatedAt.IsZero())

	got, err := GetReview(db, reviews[0].ID)
	require.NoError(t, err)
	assert.Equal(t, reviews[0].ID, got.ID)
	assert.Equal(t, "Heat", got.MovieTitle)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, reviews[0].CreatedAt.Equal(got.CreatedAt))
}

func TestUpdateReviewKeepsCreatedAt(t *testing.T) {
	db := testutil.NewDB(t)
	seedMovieWithReviews(t, db, 2)
	reviews, err := ListReviews(db)
	require.NoError(t, err)
	before := reviews[0]

	require.NoError(t, UpdateReview(db, before.ID, dto.ReviewRequest{
		MovieID: before.MovieID, UserID: before.UserID, Rating: 9, Comment: "better on rewatch",
	}))

	after, err := GetReview(db, before.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, after.Rating)
	assert.Equal(t, "better on rewatch", after.Comment)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestCreateReviewForMissingMovieFails(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := CreateReview(db, dto.ReviewRequest{MovieID: 99, UserID: 99, Rating: 3})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUserPasswordIsHashed(t *testing.T) {
	db := testutil.NewDB(t)
	user, err := CreateUser(db, dto.UserRequest{Username: "bob", Email: "b@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEqual(t, []byte("hunter2"), user.Password)
	assert.NoError(t, user.ComparePassword("hunter2"))

	got, err := GetUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.UserResponse{ID: user.ID, Username: "bob", Email: "b@example.com"}, got)
}
