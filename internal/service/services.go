package service

import (
	"github.com/deppfellow/barbershop-api/internal/lib/cache"
	"github.com/deppfellow/barbershop-api/internal/lib/job"
	"github.com/deppfellow/barbershop-api/internal/repository"
	"github.com/deppfellow/barbershop-api/internal/server"
)

type Services struct {
	Booking *BookingService
	Catalog *CatalogService
	User    *UserService
	Job     *job.JobService
}

// NewService wires the services. The catalog cache and booking
// notifications are only enabled when Redis is configured.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier BookingNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	var catalogCache CatalogCache
	if s.Redis != nil && s.Config.Cache.Enabled {
		catalogCache = cache.New(s.Redis, s.Config.Cache.TTL)
	}

	return &Services{
		Booking: NewBookingService(repos.Booking, notifier),
		Catalog: NewCatalogService(repos.Catalog, catalogCache),
		User:    NewUserService(repos.User),
		Job:     s.Job,
	}, nil
}
