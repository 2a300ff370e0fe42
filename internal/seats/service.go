package seats

import (
	"context"

	"cinebook/internal/movies"

	"github.com/google/uuid"
)

// Service interface defines the contract for seat-map business logic
type Service interface {
	GetSeatMap(ctx context.Context, showtimeID uuid.UUID) (*SeatMap, error)
}

// SeatMap is the display form of a showtime's seat grid: seats
// partitioned into rows keyed by the leading row letter, per-row
// column order preserved.
type SeatMap struct {
	Showtime *movies.Showtime `json:"showtime"`
	Rows     []SeatRow        `json:"rows"`
}

// SeatRow is one row of the grid, e.g. row "A" with seats A1..A8.
type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type service struct {
	repo      Repository
	movieRepo movies.Repository
}

func NewService(repo Repository, movieRepo movies.Repository) Service {
	return &service{
		repo:      repo,
		movieRepo: movieRepo,
	}
}

// GetSeatMap fetches a showtime's seats ordered by label and groups
// them into rows. Purely a display transform, no state change.
func (s *service) GetSeatMap(ctx context.Context, showtimeID uuid.UUID) (*SeatMap, error) {
	showtime, err := s.movieRepo.GetShowtimeByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	seats, err := s.repo.GetSeatsByShowtimeID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	return &SeatMap{
		Showtime: showtime,
		Rows:     groupIntoRows(seats),
	}, nil
}

// groupIntoRows partitions label-ordered seats by their leading row
// letter. Input order is preserved within each row.
func groupIntoRows(seats []Seat) []SeatRow {
	var rows []SeatRow
	byRow := make(map[string]int)

	for _, seat := range seats {
		if seat.Label == "" {
			continue
		}
		rowLabel := seat.Label[:1]
		idx, ok := byRow[rowLabel]
		if !ok {
			rows = append(rows, SeatRow{Row: rowLabel})
			idx = len(rows) - 1
			byRow[rowLabel] = idx
		}
		rows[idx].Seats = append(rows[idx].Seats, seat)
	}

	return rows
}
