package movies

import (
	"context"

	"github.com/google/uuid"
)

// Service interface defines the contract for catalog business logic
type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*Movie, error)
	GetShowtime(ctx context.Context, id uuid.UUID) (*Showtime, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListMovies(ctx context.Context) ([]Movie, error) {
	return s.repo.ListMovies(ctx)
}

// GetMovie returns a movie with its showtimes ordered by start time.
func (s *service) GetMovie(ctx context.Context, id uuid.UUID) (*Movie, error) {
	return s.repo.GetMovieByID(ctx, id)
}

func (s *service) GetShowtime(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	return s.repo.GetShowtimeByID(ctx, id)
}
