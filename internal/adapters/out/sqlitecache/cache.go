// Package sqlitecache keeps a local SQLite copy of the latest full order
// set. The schedule is small enough to snapshot whole, so the cache is a
// single row holding the serialized set, rewritten on every save. When the
// primary store is unreachable the cached snapshot keeps the schedule
// readable.
package sqlitecache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/adapters/wire"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const snapshotID = 1

// SnapshotDTO is the single-row table holding the serialized order set.
type SnapshotDTO struct {
	ID      int    `gorm:"primaryKey"`
	Payload []byte `gorm:"not null"`
	SavedAt time.Time
}

// TableName overrides GORM's default naming to use "snapshots".
func (SnapshotDTO) TableName() string {
	return "snapshots"
}

// SqliteSnapshotCache implements SnapshotCache on a local SQLite file.
type SqliteSnapshotCache struct {
	db *gorm.DB
}

// NewSqliteSnapshotCache opens (or creates) the SQLite file at path and
// prepares the snapshot table. Use ":memory:" for a throwaway cache.
func NewSqliteSnapshotCache(path string) (*SqliteSnapshotCache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("open snapshot cache", err)
	}
	if err := db.AutoMigrate(&SnapshotDTO{}); err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("migrate snapshot cache", err)
	}
	return &SqliteSnapshotCache{db: db}, nil
}

// Save replaces the cached snapshot with the given order set.
func (c *SqliteSnapshotCache) Save(ctx context.Context, orders []*order.Order) error {
	payload, err := json.Marshal(wire.FromDomainSlice(orders))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orders", err)
	}

	dto := SnapshotDTO{
		ID:      snapshotID,
		Payload: payload,
		SavedAt: time.Now().UTC(),
	}
	err = c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "saved_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewStoreUnavailableErrorWithCause("save snapshot", err)
	}
	return nil
}

// Load returns the cached order set, or an empty slice when nothing has
// been cached yet.
func (c *SqliteSnapshotCache) Load(ctx context.Context) ([]*order.Order, error) {
	var dto SnapshotDTO
	err := c.db.WithContext(ctx).First(&dto, "id = ?", snapshotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []*order.Order{}, nil
	}
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("load snapshot", err)
	}

	var payloads []wire.Order
	if err := json.Unmarshal(dto.Payload, &payloads); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("snapshot", err)
	}
	return wire.ToDomainSlice(payloads)
}
