package movies

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
)

type Repository interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovieByID(ctx context.Context, id uuid.UUID) (*Movie, error)
	GetShowtimeByID(ctx context.Context, id uuid.UUID) (*Showtime, error)
	CountMovies(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	err := r.db.WithContext(ctx).
		Order("title ASC").
		Find(&movies).Error
	return movies, err
}

func (r *repository) GetMovieByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	var movie Movie
	err := r.db.WithContext(ctx).
		Preload("Showtimes", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("id = ?", id).
		First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *repository) GetShowtimeByID(ctx context.Context, id uuid.UUID) (*Showtime, error) {
	var showtime Showtime
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("id = ?", id).
		First(&showtime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) CountMovies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Movie{}).Count(&count).Error
	return count, err
}
