package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONConfig stores an opaque JSON document (template layout configuration,
// rendered paper content trees).
type JSONConfig json.RawMessage

func (c JSONConfig) Value() (driver.Value, error) {
	if len(c) == 0 {
		return []byte("{}"), nil
	}
	return []byte(c), nil
}

func (c *JSONConfig) Scan(value interface{}) error {
	if value == nil {
		*c = JSONConfig("{}")
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*c = append(JSONConfig(nil), v...)
	case string:
		*c = JSONConfig(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONConfig", value)
	}
	return nil
}

func (c JSONConfig) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("{}"), nil
	}
	return c, nil
}

func (c *JSONConfig) UnmarshalJSON(data []byte) error {
	*c = append(JSONConfig(nil), data...)
	return nil
}

// Template is a named, versioned page-layout and typography configuration
// used to typeset a submission into a paper. The config document carries
// page geometry, fonts, spacing and end-matter rendering rules; the portal
// treats it as opaque JSON.
type Template struct {
	TemplateID int        `gorm:"primaryKey;column:template_id" json:"template_id"`
	Name       string     `gorm:"column:name;index:idx_templates_name" json:"name"`
	Version    int        `gorm:"column:version" json:"version"`
	Config     JSONConfig `gorm:"column:config;type:json" json:"config"`
	CreatedBy  int        `gorm:"column:created_by" json:"created_by"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt   time.Time  `gorm:"column:update_at" json:"update_at"`
}

// TableName specifies the table for Template.
func (Template) TableName() string {
	return "templates"
}
