package survey

import (
	"database/sql"
	"math/rand"
)

// Service runs every question bank and response operation against the
// shared DB handle. One instance serves all registered categories.
type Service struct {
	db *sql.DB

	// shuffle randomizes the combined sample. Swappable in tests.
	shuffle func(n int, swap func(i, j int))
}

func New(db *sql.DB) *Service {
	return &Service{
		db:      db,
		shuffle: rand.Shuffle,
	}
}
