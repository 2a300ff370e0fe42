package seeding

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/movies"
	"cinebook/internal/seats"
	"cinebook/internal/users"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DemoAdminName     = "Demo User"
	DemoAdminEmail    = "demo@example.com"
	DemoAdminPassword = "password"

	showtimesPerMovie = 3
	showtimeSpacing   = 3 * time.Hour
	firstShowtimeIn   = 2 * time.Hour
	basePrice         = 10.0
	priceStep         = 2.0
)

// Seeder populates the store with the demo catalog.
type Seeder struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:  db,
		log: logger.GetDefault(),
	}
}

type demoMovie struct {
	title       string
	description string
	duration    int
	posterURL   string
}

var demoMovies = []demoMovie{
	{
		title:       "Interstellar",
		description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		duration:    169,
		posterURL:   "https://m.media-amazon.com/images/I/91kFYg4fX3L._AC_SL1500_.jpg",
	},
	{
		title:       "Inception",
		description: "A thief who steals corporate secrets through dream-sharing technology is given an inverse task of planting an idea.",
		duration:    148,
		posterURL:   "https://m.media-amazon.com/images/I/51s+JvFsHkL._AC_.jpg",
	},
	{
		title:       "The Dark Knight",
		description: "Batman faces the Joker, a criminal mastermind who plunges Gotham into anarchy.",
		duration:    152,
		posterURL:   "https://m.media-amazon.com/images/I/51K8ouYrHeL._AC_.jpg",
	},
}

// SeedDemoData populates demo movies, showtimes, seats and the demo
// admin account. Idempotent: the catalog part runs only when no movies
// exist, the admin part only when the demo email is absent. Safe to
// invoke on every startup.
func (s *Seeder) SeedDemoData(ctx context.Context) error {
	if err := s.seedCatalog(ctx); err != nil {
		return err
	}
	return s.seedDemoAdmin(ctx)
}

func (s *Seeder) seedCatalog(ctx context.Context) error {
	var movieCount int64
	if err := s.db.WithContext(ctx).Model(&movies.Movie{}).Count(&movieCount).Error; err != nil {
		return fmt.Errorf("failed to count movies: %w", err)
	}
	if movieCount > 0 {
		s.log.Debug("demo catalog already seeded, skipping")
		return nil
	}

	baseTime := time.Now().UTC().Truncate(time.Hour).Add(firstShowtimeIn)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dm := range demoMovies {
			movie := movies.Movie{
				Title:           dm.title,
				Description:     dm.description,
				DurationMinutes: dm.duration,
				PosterURL:       dm.posterURL,
			}
			if err := tx.Create(&movie).Error; err != nil {
				return fmt.Errorf("failed to create movie %q: %w", dm.title, err)
			}

			for i := 0; i < showtimesPerMovie; i++ {
				showtime := movies.Showtime{
					MovieID:     movie.ID,
					StartTime:   baseTime.Add(showtimeSpacing * time.Duration(i)),
					TicketPrice: basePrice + priceStep*float64(i),
				}
				if err := tx.Create(&showtime).Error; err != nil {
					return fmt.Errorf("failed to create showtime for %q: %w", dm.title, err)
				}

				if err := seats.NewRepository(tx).CreateSeats(ctx, seatGrid(showtime.ID)); err != nil {
					return fmt.Errorf("failed to create seats for %q: %w", dm.title, err)
				}
			}

			s.log.Info("seeded demo movie", "title", dm.title)
		}
		return nil
	})
}

func (s *Seeder) seedDemoAdmin(ctx context.Context) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&users.User{}).
		Where("email = ?", DemoAdminEmail).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check demo admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DemoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	admin := users.User{
		Name:     DemoAdminName,
		Email:    DemoAdminEmail,
		Password: string(hashedPassword),
		IsAdmin:  true,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create demo admin: %w", err)
	}

	s.log.Info("seeded demo admin", "email", DemoAdminEmail)
	return nil
}

// seatGrid builds the fixed grid for one showtime: rows A-E, columns 1-8.
func seatGrid(showtimeID uuid.UUID) []seats.Seat {
	grid := make([]seats.Seat, 0, seats.GridRows*seats.GridColumns)
	for r := 0; r < seats.GridRows; r++ {
		rowLabel := string(rune('A' + r))
		for c := 1; c <= seats.GridColumns; c++ {
			grid = append(grid, seats.Seat{
				ShowtimeID: showtimeID,
				Label:      fmt.Sprintf("%s%d", rowLabel, c),
			})
		}
	}
	return grid
}
