package inventory

import (
	"context"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

// StockUseCase mutaciones de inventario (demanda y transferencia) serializadas vía TxRunner.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// TransferInput entrada de TransferStock.
// To se acepta pero no se usa: el producto no se reubica ni se acredita el destino.
type TransferInput struct {
	ProductID string
	From      string
	To        string
	Qty       int
}

// UpdateDemand reemplaza la demanda del producto. Sin historial.
func (uc *StockUseCase) UpdateDemand(ctx context.Context, id string, demand int) (*dto.ProductResponse, error) {
	if demand < 0 {
		return nil, domain.ErrNegativeDemand
	}
	var out *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		product.Demand = demand
		if err := productRepo.Update(product); err != nil {
			return err
		}
		out = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(out), nil
}

// TransferStock descuenta qty del stock del producto si está en la bodega origen.
// Precondiciones en orden (la primera que falla se reporta):
//  1. el producto existe            → ErrProductNotFound
//  2. su bodega es input.From       → ErrWrongSourceWarehouse
//  3. stock >= qty                  → ErrInsufficientStock
//
// El campo Warehouse no cambia y la bodega destino no recibe la cantidad.
func (uc *StockUseCase) TransferStock(ctx context.Context, input TransferInput) (*dto.ProductResponse, error) {
	if input.Qty < 0 {
		return nil, domain.ErrNegativeQuantity
	}
	var out *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Warehouse != input.From {
			return domain.ErrWrongSourceWarehouse
		}
		if product.Stock < input.Qty {
			return domain.ErrInsufficientStock
		}
		product.Stock -= input.Qty
		if err := productRepo.Update(product); err != nil {
			return err
		}
		out = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(out), nil
}
