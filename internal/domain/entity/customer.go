package entity

import "time"

// Customer representa un cliente de la cervecería (bares, distribuidores, tiendas).
type Customer struct {
	ID          string
	Name        string // único
	ContactInfo string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
