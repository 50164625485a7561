// Package model provides the site content entry model.
package model

import (
	"encoding/json"
	"time"
)

// SiteContent is an editable page-text entry. Content is a schema-less JSON
// blob: the set of text fields changes over the site's life, so no struct is
// imposed on it. Writes replace the blob wholesale, last write wins.
type SiteContent struct {
	Key       string          `gorm:"primaryKey;column:key" json:"key"`
	Content   json.RawMessage `gorm:"column:content;type:jsonb;not null" json:"content"`
	UpdatedAt time.Time       `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (SiteContent) TableName() string {
	return "site_content"
}
