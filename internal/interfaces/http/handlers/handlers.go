package handlers

import (
	"gorm.io/gorm"
)

type Handlers struct {
	Performance *PerformanceHandler
}

func NewHandlers(db *gorm.DB) *Handlers {
	return &Handlers{
		Performance: NewPerformanceHandler(db),
	}
}
