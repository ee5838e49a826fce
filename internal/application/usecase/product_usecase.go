package usecase

import (
	"fmt"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura para productos. Stock y demanda se modifican
// vía inventory.StockUseCase.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos aplicando búsqueda, bodega y estado (AND). Sin paginación.
func (uc *ProductUseCase) List(in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ToFilter(in))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// ToFilter traduce los parámetros de entrada al filtro de dominio.
func ToFilter(in dto.ProductFilterRequest) inventory.ProductFilter {
	return inventory.ProductFilter{
		Search:    in.Search,
		Warehouse: in.Warehouse,
		Status:    entity.Status(in.Status),
	}
}
