package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cinelog/review-server-go/internal/model"
)

// MovieRepository is read-side only: reviews need movies to point at, but the
// catalog itself is managed elsewhere.
type MovieRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Movie, error)
}

type movieRepo struct {
	db sqlxDB
}

func NewMovieRepository(db *sqlx.DB) MovieRepository {
	return &movieRepo{db: db}
}

func (r *movieRepo) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.GetContext(ctx, &movie, `
		SELECT * FROM filmes WHERE id = $1
	`, id)
	return HandleNotFound(&movie, err)
}
