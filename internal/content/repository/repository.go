// Package repository provides data access layer for site content.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contentModel "github.com/cavalryfc/registration-api/internal/content/model"
)

// Repository defines the interface for site content access.
type Repository interface {
	// Get returns the content blob for a key, or nil when absent.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Put upserts the content blob for a key, replacing it wholesale.
	Put(ctx context.Context, key string, content json.RawMessage) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new content repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get returns the content blob for a key, or nil when absent.
func (r *repository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var entry contentModel.SiteContent

	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return entry.Content, nil
}

// Put upserts the content blob for a key, replacing it wholesale.
func (r *repository) Put(ctx context.Context, key string, content json.RawMessage) error {
	entry := contentModel.SiteContent{
		Key:       key,
		Content:   content,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(&entry).Error
}
