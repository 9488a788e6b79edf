package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Itinerary struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Destination string    `gorm:"index"`
	Days        int
	Plan        datatypes.JSON
	Tags        pq.StringArray `gorm:"type:text[]"`
}
