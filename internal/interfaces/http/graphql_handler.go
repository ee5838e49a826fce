package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// GraphQLRequest cuerpo estándar de una petición GraphQL.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// graphQLErrorEnvelope respuesta para peticiones que no llegan a ejecutarse.
type graphQLErrorEnvelope struct {
	Errors []graphQLMessage `json:"errors"`
}

type graphQLMessage struct {
	Message string `json:"message"`
}

// GraphQLHandler ejecuta consultas y mutaciones contra el esquema.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Serve godoc
// @Summary      Endpoint GraphQL
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        body  body  GraphQLRequest  true  "query, variables, operationName"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /graphql [post]
// @Router       /graphql [get]
func (h *GraphQLHandler) Serve(c *fiber.Ctx) error {
	var in GraphQLRequest
	if c.Method() == fiber.MethodGet {
		in.Query = c.Query("query")
		in.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &in.Variables); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(graphQLErrorEnvelope{
					Errors: []graphQLMessage{{Message: "variables inválidas: " + err.Error()}},
				})
			}
		}
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(graphQLErrorEnvelope{
			Errors: []graphQLMessage{{Message: "cuerpo inválido: " + err.Error()}},
		})
	}
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(graphQLErrorEnvelope{
			Errors: []graphQLMessage{{Message: "Must provide query string."}},
		})
	}
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  in.Query,
		VariableValues: in.Variables,
		OperationName:  in.OperationName,
		Context:        c.UserContext(),
	})
	return c.JSON(result)
}
