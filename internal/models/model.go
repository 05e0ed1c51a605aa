// Package models defines the resources of the Ascent backend.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultModel is the base model for all resources.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps are managed by the store on creation and update.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// NewDefaultModel initializes a model with a fresh unique ID and creation
// timestamps. ID uniqueness over the store lifetime is a precondition all
// aggregation relies on; random UUIDs provide it.
func NewDefaultModel() DefaultModel {
	now := time.Now().In(time.UTC)

	return DefaultModel{
		ID: uuid.New(),
		Timestamps: Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// Touch updates the UpdatedAt timestamp.
func (m *DefaultModel) Touch() {
	m.UpdatedAt = time.Now().In(time.UTC)
}
