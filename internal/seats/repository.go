package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateSeats(ctx context.Context, seats []Seat) error
	GetSeatsByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]Seat, error)
	CountBookedSeats(ctx context.Context, showtimeID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSeats(ctx context.Context, seats []Seat) error {
	return r.db.WithContext(ctx).Create(&seats).Error
}

func (r *repository) GetSeatsByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("showtime_id = ?", showtimeID).
		Order("label ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) CountBookedSeats(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Seat{}).
		Where("showtime_id = ? AND is_booked = ?", showtimeID, true).
		Count(&count).Error
	return count, err
}
