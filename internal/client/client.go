// Package client es el cliente GraphQL del tablero de inventario, usado por invctl.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
)

// DefaultEndpoint endpoint GraphQL del servidor local.
const DefaultEndpoint = "http://localhost:4000/graphql"

// Product fila del listado de productos.
type Product struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	SKU       string `json:"sku" yaml:"sku"`
	Warehouse string `json:"warehouse" yaml:"warehouse"`
	Stock     int    `json:"stock" yaml:"stock"`
	Demand    int    `json:"demand" yaml:"demand"`
}

// Entity convierte la fila a la entidad de dominio.
func (p Product) Entity() entity.Product {
	return entity.Product{ID: p.ID, Name: p.Name, SKU: p.SKU, Warehouse: p.Warehouse, Stock: p.Stock, Demand: p.Demand}
}

// Warehouse bodega.
type Warehouse struct {
	Code    string `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city" yaml:"city"`
	Country string `json:"country" yaml:"country"`
}

// KPIPoint punto diario de la serie.
type KPIPoint struct {
	Date   string `json:"date" yaml:"date"`
	Stock  int    `json:"stock" yaml:"stock"`
	Demand int    `json:"demand" yaml:"demand"`
}

// Filter filtros del listado de productos; vacíos = sin filtro.
type Filter struct {
	Search    string
	Status    string
	Warehouse string
}

// GraphQLError error reportado por el servidor en errors[].
type GraphQLError struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// Code devuelve extensions.code si existe.
func (e GraphQLError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// ResponseError agrupa los errores GraphQL de una respuesta.
type ResponseError struct {
	Errors []GraphQLError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return strings.Join(msgs, "; ")
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Client cliente GraphQL sobre resty.
type Client struct {
	endpoint string
	http     *resty.Client
}

// New construye el cliente para el endpoint indicado.
func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http: resty.New().
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// do envía la operación y decodifica data en out.
func (c *Client) do(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request{Query: query, Variables: vars}).
		SetResult(&env).
		SetError(&env).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	if len(env.Errors) > 0 {
		return &ResponseError{Errors: env.Errors}
	}
	if resp.IsError() {
		return fmt.Errorf("graphql request: HTTP %d", resp.StatusCode())
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}

const productFields = `id name sku warehouse stock demand`

// Products lista productos con filtros.
func (c *Client) Products(ctx context.Context, f Filter) ([]Product, error) {
	const q = `query GetProducts($search: String, $status: String, $warehouse: String) {
  products(search: $search, status: $status, warehouse: $warehouse) { ` + productFields + ` }
}`
	vars := map[string]interface{}{}
	if f.Search != "" {
		vars["search"] = f.Search
	}
	if f.Status != "" {
		vars["status"] = f.Status
	}
	if f.Warehouse != "" {
		vars["warehouse"] = f.Warehouse
	}
	var data struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, q, vars, &data); err != nil {
		return nil, err
	}
	return data.Products, nil
}

// Warehouses lista las bodegas.
func (c *Client) Warehouses(ctx context.Context) ([]Warehouse, error) {
	const q = `query GetWarehouses { warehouses { code name city country } }`
	var data struct {
		Warehouses []Warehouse `json:"warehouses"`
	}
	if err := c.do(ctx, q, nil, &data); err != nil {
		return nil, err
	}
	return data.Warehouses, nil
}

// KPIs serie de tendencia para el rango ("7d", "14d", "30d").
func (c *Client) KPIs(ctx context.Context, r string) ([]KPIPoint, error) {
	const q = `query GetKPIs($range: String!) { kpis(range: $range) { date stock demand } }`
	var data struct {
		KPIs []KPIPoint `json:"kpis"`
	}
	if err := c.do(ctx, q, map[string]interface{}{"range": r}, &data); err != nil {
		return nil, err
	}
	return data.KPIs, nil
}

// UpdateDemand reemplaza la demanda del producto.
func (c *Client) UpdateDemand(ctx context.Context, id string, demand int) (*Product, error) {
	const q = `mutation UpdateDemand($id: ID!, $demand: Int!) {
  updateDemand(id: $id, demand: $demand) { ` + productFields + ` }
}`
	var data struct {
		UpdateDemand *Product `json:"updateDemand"`
	}
	if err := c.do(ctx, q, map[string]interface{}{"id": id, "demand": demand}, &data); err != nil {
		return nil, err
	}
	return data.UpdateDemand, nil
}

// TransferStock descuenta qty del producto en la bodega origen.
func (c *Client) TransferStock(ctx context.Context, id, from, to string, qty int) (*Product, error) {
	const q = `mutation TransferStock($id: ID!, $from: String!, $to: String!, $qty: Int!) {
  transferStock(id: $id, from: $from, to: $to, qty: $qty) { ` + productFields + ` }
}`
	var data struct {
		TransferStock *Product `json:"transferStock"`
	}
	vars := map[string]interface{}{"id": id, "from": from, "to": to, "qty": qty}
	if err := c.do(ctx, q, vars, &data); err != nil {
		return nil, err
	}
	return data.TransferStock, nil
}
