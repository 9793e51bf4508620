package sqliterepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is one stored key.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_store"
}

type Repository struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite file at path and migrates the kv_store table.
func Open(path string) (*Repository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return New(db)
}

func New(db *gorm.DB) (*Repository, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_store: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := r.db.WithContext(ctx).Where(clause.Eq{Column: "key", Value: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		zap.L().Error("can't read key", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		zap.L().Error("can't write key", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where(clause.Eq{Column: "key", Value: key}).Delete(&Entry{}).Error; err != nil {
		zap.L().Error("can't delete key", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
