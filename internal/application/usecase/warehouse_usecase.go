package usecase

import (
	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso de lectura para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List devuelve todas las bodegas.
func (uc *WarehouseUseCase) List() (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *dto.NewWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

// GetByCode obtiene una bodega por código; nil si no existe.
func (uc *WarehouseUseCase) GetByCode(code string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	return dto.NewWarehouseResponse(w), nil
}
