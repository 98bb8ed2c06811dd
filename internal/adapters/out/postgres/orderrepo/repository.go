package orderrepo

import (
	"context"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderStore implements OrderStore using GORM against PostgreSQL.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// List retrieves every order, most recently scheduled dates last and route
// positions ascending within a date.
func (s *GormOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := s.db.WithContext(ctx).
		Order("delivery_date, route_order, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Upsert inserts or replaces the order's row. The stored creation timestamp
// wins on conflict so replays and edits never rewrite it; updated_at is
// stamped on every write. Returns the full order set after the write.
func (s *GormOrderStore) Upsert(ctx context.Context, aggregate *order.Order) ([]*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if dto.CreatedAt.IsZero() {
		dto.CreatedAt = now
	}
	dto.UpdatedAt = &now

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_name", "address", "delivery_time", "time_format",
				"delivery_date", "products", "payment_method", "is_delivered",
				"route_order", "phone", "notes", "total_amount", "updated_at",
			}),
		}).
		Create(&dto).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("upsert order", err)
	}

	return s.List(ctx)
}

// DeleteByID removes the order's row. A missing row is not an error, so the
// delete can be replayed safely. Returns the full order set after the
// removal.
func (s *GormOrderStore) DeleteByID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw, err := uuid.Parse(id.String())
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	if err := s.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", raw).Error; err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("delete order", err)
	}

	return s.List(ctx)
}
