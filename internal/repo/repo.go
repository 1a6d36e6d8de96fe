package repo

import (
	"github.com/mealdesk/canteen/internal/pg"
	billingrepo "github.com/mealdesk/canteen/internal/repo/billing-repo"
	categoryrepo "github.com/mealdesk/canteen/internal/repo/category-repo"
	orderrepo "github.com/mealdesk/canteen/internal/repo/order-repo"
	timeslotrepo "github.com/mealdesk/canteen/internal/repo/timeslot-repo"
	userrepo "github.com/mealdesk/canteen/internal/repo/user-repo"
)

// Repositories exposes the concrete repos; each service narrows them to the
// interface it declares.
type Repositories struct {
	OrderRepo    *orderrepo.Repository
	BillingRepo  *billingrepo.Repository
	CategoryRepo *categoryrepo.Repository
	TimeSlotRepo *timeslotrepo.Repository
	UserRepo     *userrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:    orderrepo.New(conn, txManager),
		BillingRepo:  billingrepo.New(conn, txManager),
		CategoryRepo: categoryrepo.New(conn),
		TimeSlotRepo: timeslotrepo.New(conn, txManager),
		UserRepo:     userrepo.New(conn),
	}
}
