package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/inventory"
)

type resolver struct {
	deps Deps
}

func (r *resolver) products(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.ProductUC.List(dto.ProductFilterRequest{
		Search:    stringArg(p.Args, "search"),
		Status:    stringArg(p.Args, "status"),
		Warehouse: stringArg(p.Args, "warehouse"),
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return out.Items, nil
}

func (r *resolver) warehouses(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.WarehouseUC.List()
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return out.Items, nil
}

func (r *resolver) kpis(p graphql.ResolveParams) (interface{}, error) {
	return r.deps.KPIUC.GetSeries(stringArg(p.Args, "range")).Points, nil
}

func (r *resolver) updateDemand(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.StockUC.UpdateDemand(p.Context, stringArg(p.Args, "id"), intArg(p.Args, "demand"))
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return out, nil
}

func (r *resolver) transferStock(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.StockUC.TransferStock(p.Context, inventory.TransferInput{
		ProductID: stringArg(p.Args, "id"),
		From:      stringArg(p.Args, "from"),
		To:        stringArg(p.Args, "to"),
		Qty:       intArg(p.Args, "qty"),
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return out, nil
}

// stringArg argumento opcional; ausente o null equivale a "".
func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]interface{}, key string) int {
	n, _ := args[key].(int)
	return n
}
