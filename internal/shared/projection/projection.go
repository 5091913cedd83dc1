package projection

import "time"

// Metadata captures persistence timestamps shared by stored entities.
type Metadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Created stamps both timestamps for a freshly inserted record.
func (m *Metadata) Created(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touched advances UpdatedAt while preserving the original creation time.
func (m *Metadata) Touched(previous Metadata, now time.Time) {
	m.CreatedAt = previous.CreatedAt
	m.UpdatedAt = now
}
