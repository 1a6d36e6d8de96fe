package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Role      string    `db:"role"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type Category struct {
	ID        int             `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	IsLocked  bool            `db:"is_locked"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Order price is copied from the category at creation and never changes
// afterwards even if the category is repriced.
type Order struct {
	ID         int             `db:"id"`
	UserID     int             `db:"user_id"`
	CategoryID int             `db:"category_id"`
	Date       time.Time       `db:"date"`
	Price      decimal.Decimal `db:"price"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
	Notes      string          `db:"notes"`
}

// BillingSnapshot is a cached per-(user, date) rollup of that user's orders.
// The order rows stay the source of truth; the snapshot is reconciled on
// payment and deletion events. One row per (user_id, date).
type BillingSnapshot struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	Date            time.Time       `db:"date"`
	CompletedAmount decimal.Decimal `db:"completed_amount"`
	PendingAmount   decimal.Decimal `db:"pending_amount"`
	Balance         decimal.Decimal `db:"balance"`
}

// TimeSlot is an ordering availability window: a date range combined with a
// time-of-day range. Ordering is open whenever at least one active slot
// covers the current local date and time.
type TimeSlot struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SnapshotKey identifies one billing snapshot row.
type SnapshotKey struct {
	UserID int       `db:"user_id"`
	Date   time.Time `db:"date"`
}

// OrderLine is one order joined with its category and owner names, as shown
// on the kitchen board.
type OrderLine struct {
	OrderID      int       `db:"order_id"`
	CategoryName string    `db:"category_name"`
	UserName     string    `db:"user_name"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
