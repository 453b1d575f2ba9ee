package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"date"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// BeforeCreate assigns a uuid primary key so the schema does not depend on
// the uuid-ossp extension.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
