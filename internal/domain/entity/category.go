package entity

import "time"

// Category representa una categoría de productos (ej. IPA, Lager, Stout).
// Los productos referencian la categoría por nombre, igual que el esquema original.
type Category struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}
