package entity

import (
	"time"

	"fikse-agent-be/pkg/catalog"
)

const (
	OrderStatusDraft     = "draft"
	OrderStatusConfirmed = "confirmed"
)

// Order is a set of selected repair services. Draft while the conversation is
// in progress, immutable once confirmed.
type Order struct {
	Id             string
	Services       []catalog.Record
	TotalPrice     float64
	EstimatedHours *float64
	CreatedAt      time.Time
	Status         string
}

func NewDraftOrder() *Order {
	return &Order{Status: OrderStatusDraft}
}

// AddService appends a service to the draft. Duplicates are a silent no-op,
// so the return value only reports whether anything changed.
func (o *Order) AddService(rec catalog.Record) bool {
	for _, existing := range o.Services {
		if sameService(existing, rec) {
			return false
		}
	}
	o.Services = append(o.Services, rec)
	o.recalc()
	return true
}

// recalc keeps TotalPrice equal to the exact sum of the current services.
func (o *Order) recalc() {
	var total float64
	var hours float64
	hasHours := false
	for _, s := range o.Services {
		total += s.Price
		if s.EstimatedHours != nil {
			hours += *s.EstimatedHours
			hasHours = true
		}
	}
	o.TotalPrice = total
	if hasHours {
		o.EstimatedHours = &hours
	} else {
		o.EstimatedHours = nil
	}
}

func sameService(a, b catalog.Record) bool {
	return a.Service == b.Service &&
		a.GarmentType == b.GarmentType &&
		a.RepairerType == b.RepairerType &&
		a.Category == b.Category &&
		a.Price == b.Price
}
