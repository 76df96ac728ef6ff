// Package items is a small item registry whose service reports every
// failure as an rop.Outcome.
package items

import (
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 64

type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
