package model

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	Id             string         `gorm:"type:text;primaryKey"`
	Services       datatypes.JSON `gorm:"type:jsonb"`
	TotalPrice     float64
	EstimatedHours *float64
	Status         string         `gorm:"type:text;index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
