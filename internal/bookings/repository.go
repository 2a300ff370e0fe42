package bookings

import (
	"context"
	"errors"
	"fmt"

	"cinebook/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrSeatsUnavailable covers both conflict cases: a requested seat
	// is already booked, or a label does not exist for the showtime.
	ErrSeatsUnavailable = errors.New("one or more selected seats are no longer available")

	ErrBookingNotFound = errors.New("booking not found")
)

type Repository interface {
	// CreateBookingWithSeats atomically marks the seats booked and
	// inserts the booking record.
	CreateBookingWithSeats(ctx context.Context, booking *Booking, labels []string) error

	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	CountBookings(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBookingWithSeats runs the whole booking as one transaction so
// a crash between marking seats and creating the booking cannot leave
// seats booked with no corresponding booking.
func (r *repository) CreateBookingWithSeats(ctx context.Context, booking *Booking, labels []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the candidate seat rows to serialize concurrent
		// bookings of the same seats. SQLite (used in tests) has no
		// FOR UPDATE; the guarded update below still rejects a lost race.
		q := tx.Where("showtime_id = ? AND label IN ?", booking.ShowtimeID, labels)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var matched []seats.Seat
		if err := q.Find(&matched).Error; err != nil {
			return fmt.Errorf("failed to load seats: %w", err)
		}

		// 2. Reject the whole request on any mismatch or taken seat.
		if len(matched) != len(labels) {
			return ErrSeatsUnavailable
		}
		for _, seat := range matched {
			if seat.IsBooked {
				return ErrSeatsUnavailable
			}
		}

		// 3. Mark all matched seats booked. The is_booked guard makes
		// the update a check-and-set, so a concurrent booking that won
		// the race shows up as a short row count.
		result := tx.Model(&seats.Seat{}).
			Where("showtime_id = ? AND label IN ? AND is_booked = ?", booking.ShowtimeID, labels, false).
			Update("is_booked", true)
		if result.Error != nil {
			return fmt.Errorf("failed to mark seats booked: %w", result.Error)
		}
		if result.RowsAffected != int64(len(labels)) {
			return ErrSeatsUnavailable
		}

		// 4. Create the booking record.
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Showtime").
		Preload("Showtime.Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) CountBookings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).Count(&count).Error
	return count, err
}
