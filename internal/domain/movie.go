package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID        int
	Title     string
	PosterUrl string
	Synopsis  string
	Duration  int
	Origin    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
