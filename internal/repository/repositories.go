package repository

import (
	"github.com/deppfellow/barbershop-api/internal/server"
)

// Repositories groups every repository so they can be wired in one place.
type Repositories struct {
	Booking *BookingRepository
	Catalog *CatalogRepository
	User    *UserRepository
}

// NewRepositories builds all repositories on top of the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithDB(s.DB.Pool)
}

// NewRepositoriesWithDB builds all repositories on top of db.
func NewRepositoriesWithDB(db DBTX) *Repositories {
	return &Repositories{
		Booking: NewBookingRepository(db),
		Catalog: NewCatalogRepository(db),
		User:    NewUserRepository(db),
	}
}
