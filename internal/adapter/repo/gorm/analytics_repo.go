package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voidascendant/internal/adapter/repo/gorm/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsEvent struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepo {
	return AnalyticsRepo{db: db}
}

func (r AnalyticsRepo) Report(ctx context.Context, name string, properties map[string]any) error {
	if properties == nil {
		properties = map[string]any{}
	}
	b, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("encode analytics properties: %w", err)
	}
	row := model.AnalyticsEvent{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: string(b),
		OccurredAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&row).Error
}

func (r AnalyticsRepo) ListByName(ctx context.Context, name string, limit int) ([]AnalyticsEvent, error) {
	rows := []model.AnalyticsEvent{}
	query := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where(&model.AnalyticsEvent{Name: name}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]AnalyticsEvent, 0, len(rows))
	for _, row := range rows {
		var props map[string]any
		if row.Properties != "" {
			if err := json.Unmarshal([]byte(row.Properties), &props); err != nil {
				return nil, fmt.Errorf("decode analytics event %s: %w", row.ID, err)
			}
		}
		out = append(out, AnalyticsEvent{
			ID:         row.ID,
			Name:       row.Name,
			Properties: props,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}
