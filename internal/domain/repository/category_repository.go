package repository

import "github.com/jhoicas/cerveceria-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
