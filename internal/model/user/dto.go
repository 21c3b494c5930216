package user

import "github.com/deppfellow/barbershop-api/internal/validation"

// ------------------------------------------------------------

// GetUserQuery looks a user up by id, or by phone when no id is given.
type GetUserQuery struct {
	UserID int    `query:"user_id"`
	Phone  string `query:"phone"`
}

func (q *GetUserQuery) Validate() error {
	if err := validation.Struct(q); err != nil {
		return err
	}
	if q.UserID == 0 && q.Phone == "" {
		return validation.CustomValidationErrors{
			{Field: "user_id", Message: "is required when phone is empty"},
		}
	}
	return nil
}

func (q *GetUserQuery) ValidationMessage() string {
	return "user_id or phone required"
}

// ------------------------------------------------------------

type UpsertUserPayload struct {
	Phone string  `json:"phone" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email"`
}

func (p *UpsertUserPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpsertUserPayload) ValidationMessage() string {
	return "phone and name are required"
}

// ------------------------------------------------------------

// AdjustBonusPayload applies BonusPoints as a signed delta. Zero is a valid delta.
type AdjustBonusPayload struct {
	UserID      int  `json:"user_id" validate:"required"`
	BonusPoints *int `json:"bonus_points" validate:"required"`
}

func (p *AdjustBonusPayload) Validate() error {
	return validation.Struct(p)
}

func (p *AdjustBonusPayload) ValidationMessage() string {
	return "user_id and bonus_points required"
}
