package catalog

import "github.com/deppfellow/barbershop-api/internal/validation"

// Resource names a catalog listing selected by the type query parameter.
type Resource string

const (
	Salons     Resource = "salons"
	Masters    Resource = "masters"
	Services   Resource = "services"
	Promotions Resource = "promotions"
)

// DefaultResource is used when no type is given.
const DefaultResource = Salons

// Row is an opaque catalog row keyed by column name.
type Row = map[string]any

type Query struct {
	Type    string `query:"type" validate:"omitempty,oneof=salons masters services promotions"`
	SalonID int    `query:"salon_id"`
}

func (q *Query) Validate() error {
	return validation.Struct(q)
}

func (q *Query) ValidationMessage() string {
	return "Invalid resource type"
}

// Resource returns the requested resource, falling back to DefaultResource.
func (q *Query) Resource() Resource {
	if q.Type == "" {
		return DefaultResource
	}
	return Resource(q.Type)
}
