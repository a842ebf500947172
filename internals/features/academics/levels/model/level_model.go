package model

import (
	"time"

	"github.com/google/uuid"
)

// LevelModel is a deliberately department-independent global list
// ("Year 1" .. "Year 4").
type LevelModel struct {
	LevelID        uuid.UUID  `json:"level_id" gorm:"column:level_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LevelName      string     `json:"level_name" gorm:"column:level_name;size:60;uniqueIndex;not null" validate:"required,min=1,max=60"`
	LevelCreatedAt time.Time  `json:"level_created_at" gorm:"column:level_created_at;not null;autoCreateTime"`
	LevelUpdatedAt *time.Time `json:"level_updated_at,omitempty" gorm:"column:level_updated_at"`
}

func (LevelModel) TableName() string {
	return "levels"
}
