package gormrepo

import (
	"context"
	"errors"
	"time"

	"voidascendant/internal/adapter/repo/gorm/model"
	"voidascendant/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeyValueRepo struct {
	db *gorm.DB
}

func NewKeyValueRepo(db *gorm.DB) KeyValueRepo {
	return KeyValueRepo{db: db}
}

func (r KeyValueRepo) Get(ctx context.Context, key string) (string, error) {
	var row model.PersistedFlag
	err := getDBFromCtx(ctx, r.db).WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ports.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (r KeyValueRepo) Set(ctx context.Context, key, value string) error {
	row := model.PersistedFlag{Key: key, Value: value, UpdatedAt: time.Now()}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (r KeyValueRepo) Remove(ctx context.Context, key string) error {
	return getDBFromCtx(ctx, r.db).WithContext(ctx).Where("key = ?", key).Delete(&model.PersistedFlag{}).Error
}
