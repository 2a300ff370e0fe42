package bookings

import (
	"context"
	"errors"
	"strings"

	"cinebook/internal/movies"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrEmptySeatSelection = errors.New("please select at least one seat")
)

// Service interface defines the contract for booking business logic
type Service interface {
	BookSeats(ctx context.Context, userID, showtimeID uuid.UUID, labels []string) (*Booking, error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
}

type service struct {
	repo      Repository
	movieRepo movies.Repository
	log       *logger.Logger
}

func NewService(repo Repository, movieRepo movies.Repository) Service {
	return &service{
		repo:      repo,
		movieRepo: movieRepo,
		log:       logger.GetDefault(),
	}
}

// BookSeats validates the selection against current availability and
// atomically records a booking while marking the seats booked. The
// whole request is rejected when any seat is unavailable; no partial
// bookings are created.
func (s *service) BookSeats(ctx context.Context, userID, showtimeID uuid.UUID, labels []string) (*Booking, error) {
	if len(labels) == 0 {
		return nil, ErrEmptySeatSelection
	}

	showtime, err := s.movieRepo.GetShowtimeByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		UserID:     userID,
		ShowtimeID: showtime.ID,
		SeatLabels: strings.Join(labels, ","),
		TotalPrice: showtime.TicketPrice * float64(len(labels)),
	}

	if err := s.repo.CreateBookingWithSeats(ctx, booking, labels); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), showtime.ID.String(), userID.String(), len(labels))

	return booking, nil
}

// GetBooking retrieves one booking. Another user's booking is reported
// as not found rather than forbidden, so booking IDs stay unguessable.
func (s *service) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// GetUserBookings retrieves the caller's bookings, newest first.
func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return s.repo.GetUserBookings(ctx, userID)
}
