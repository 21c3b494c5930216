package user

import "time"

const (
	BonusTypeManual        = "manual"
	BonusManualDescription = "Manual bonus points adjustment"

	// BonusHistoryLimit caps the ledger rows returned with a user.
	BonusHistoryLimit = 50
)

type User struct {
	ID          int        `json:"id" db:"id"`
	Phone       string     `json:"phone" db:"phone"`
	Name        string     `json:"name" db:"name"`
	Email       *string    `json:"email" db:"email"`
	BonusPoints int        `json:"bonus_points" db:"bonus_points"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// BonusHistory is one entry of the append-only bonus ledger.
type BonusHistory struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Points      int       `json:"points" db:"points"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Response struct {
	User *User `json:"user"`
}

type WithHistoryResponse struct {
	User         *User          `json:"user"`
	BonusHistory []BonusHistory `json:"bonus_history"`
}
