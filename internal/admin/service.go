package admin

import (
	"context"

	"cinebook/internal/bookings"
	"cinebook/internal/movies"
)

// Stats is the operational summary returned to administrators.
type Stats struct {
	Movies   int64 `json:"movies"`
	Bookings int64 `json:"bookings"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	movieRepo   movies.Repository
	bookingRepo bookings.Repository
}

func NewService(movieRepo movies.Repository, bookingRepo bookings.Repository) Service {
	return &service{
		movieRepo:   movieRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	movieCount, err := s.movieRepo.CountMovies(ctx)
	if err != nil {
		return nil, err
	}

	bookingCount, err := s.bookingRepo.CountBookings(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Movies:   movieCount,
		Bookings: bookingCount,
	}, nil
}
