package domain

import "time"

// Product represents a catalogue entry kept in the document store.
// ID is the store-generated key rendered as a string.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductPatch holds the fields of a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name      *string
	Price     *float64
	UpdatedAt *time.Time
}

// IsEmpty reports whether the patch carries no caller-supplied field.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.UpdatedAt == nil
}
