package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateSlot is one row of the state_slots table.
type StateSlot struct {
	Key       string `gorm:"primaryKey;type:text"`
	Value     string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (StateSlot) TableName() string { return "state_slots" }

type gormSlotStore struct{ db *gorm.DB }

// NewGormSlotStore stores slots in Postgres. The table is created by
// infra.NewDatabase.
func NewGormSlotStore(db *gorm.DB) SlotStore { return &gormSlotStore{db: db} }

func (s *gormSlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row StateSlot
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Value), nil
}

func (s *gormSlotStore) Put(ctx context.Context, key string, value []byte) error {
	row := StateSlot{Key: key, Value: string(value), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (s *gormSlotStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&StateSlot{}).Error
}

func (s *gormSlotStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *gormSlotStore) Driver() string { return "postgres" }
