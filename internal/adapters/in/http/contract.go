package http

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"restaurant/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/swaggo/swag"
)

var (
	//go:embed openapi/orders.yaml
	ordersDocument []byte

	//go:embed openapi/kitchen.yaml
	kitchenDocument []byte
)

// Contract is the OpenAPI document of one service's RPC patterns. Requests
// are checked against it before a pattern runs, and it is the document the
// swagger UI serves.
type Contract struct {
	name string
	doc  *openapi3.T
	raw  string
}

var (
	orderContract = sync.OnceValues(func() (*Contract, error) {
		return registerContract("orders", ordersDocument)
	})
	kitchenContract = sync.OnceValues(func() (*Contract, error) {
		return registerContract("kitchen", kitchenDocument)
	})
)

// OrderContract returns the order service document.
func OrderContract() (*Contract, error) {
	return orderContract()
}

// KitchenContract returns the kitchen service document.
func KitchenContract() (*Contract, error) {
	return kitchenContract()
}

// LoadContract parses and validates an OpenAPI 3 document.
func LoadContract(name string, data []byte) (*Contract, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load %s contract: %w", name, err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate %s contract: %w", name, err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode %s contract: %w", name, err)
	}

	return &Contract{name: name, doc: doc, raw: string(raw)}, nil
}

// registerContract loads the document and publishes it to swag so
// echo-swagger can serve it under the contract name.
func registerContract(name string, data []byte) (*Contract, error) {
	c, err := LoadContract(name, data)
	if err != nil {
		return nil, err
	}
	swag.Register(name, c)
	return c, nil
}

// Name is the swag instance name.
func (c *Contract) Name() string {
	return c.name
}

// ReadDoc implements swag.Swagger.
func (c *Contract) ReadDoc() string {
	return c.raw
}

// Documents reports whether the pattern has an operation in the document.
func (c *Contract) Documents(pattern string) bool {
	_, ok := c.operation(pattern)
	return ok
}

// Validate checks req against the operation documented for pattern. Every
// failure is validation-class.
func (c *Contract) Validate(pattern string, req *http.Request) error {
	route, ok := c.operation(pattern)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("pattern", fmt.Errorf("%s is not documented", pattern))
	}

	input := &openapi3filter.RequestValidationInput{
		Request: req,
		Route:   route,
		Options: &openapi3filter.Options{SkipSettingDefaults: true},
	}
	if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

func (c *Contract) operation(pattern string) (*routers.Route, bool) {
	path := "/rpc/" + pattern
	item := c.doc.Paths.Value(path)
	if item == nil || item.Post == nil {
		return nil, false
	}
	return &routers.Route{
		Spec:      c.doc,
		Path:      path,
		PathItem:  item,
		Method:    http.MethodPost,
		Operation: item.Post,
	}, true
}
