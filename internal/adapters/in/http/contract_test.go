package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errcodes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderContract(t *testing.T) *httpadapter.Contract {
	t.Helper()
	c, err := httpadapter.OrderContract()
	require.NoError(t, err)
	return c
}

func kitchenContract(t *testing.T) *httpadapter.Contract {
	t.Helper()
	c, err := httpadapter.KitchenContract()
	require.NoError(t, err)
	return c
}

func TestContracts_DocumentEveryPattern(t *testing.T) {
	orders := orderContract(t)
	for _, name := range httpadapter.NewOrderRouter(httpadapter.OrderHandlers{}, discardLogger()).Patterns() {
		assert.True(t, orders.Documents(name), name)
	}

	kitchens := kitchenContract(t)
	for _, name := range httpadapter.NewKitchenRouter(httpadapter.KitchenHandlers{}, discardLogger()).Patterns() {
		assert.True(t, kitchens.Documents(name), name)
	}

	assert.False(t, orders.Documents("kitchen:bump-ticket"))
}

func TestLoadContract_RejectsInvalidDocument(t *testing.T) {
	_, err := httpadapter.LoadContract("broken", []byte("openapi: 3.0.3\ninfo: {}\npaths: {}\n"))

	require.Error(t, err)
}

func TestOrderRouter_ContractRejectsBeforeUseCase(t *testing.T) {
	orderID := kernel.NewUUID().String()
	itemID := kernel.NewUUID().String()

	testCases := []struct {
		name    string
		pattern string
		body    string
	}{
		{"short reject reason", "orders:reject-items",
			`{"orderId": "` + orderID + `", "itemIds": ["` + itemID + `"], "reason": "no"}`},
		{"missing item ids", "orders:serve-items", `{"orderId": "` + orderID + `"}`},
		{"order id is not a uuid", "orders:get", `{"orderId": "42"}`},
		{"quantity is a string", "orders:add-items",
			`{"orderId": "` + orderID + `", "items": [{"menuItemId": "m", "name": "n", "price": "1.00", "quantity": "2"}]}`},
		{"price is not a number", "orders:create",
			`{"tenantId": "t", "tableId": "x", "items": [{"menuItemId": "m", "name": "n", "price": "abc", "quantity": 1}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reject := new(MockUseCase[commands.RejectItemsCommand, *order.Order])
			serve := new(MockUseCase[commands.ServeItemsCommand, *order.Order])
			addItems := new(MockUseCase[commands.AddItemsCommand, *order.Order])
			create := new(MockUseCase[commands.CreateOrderCommand, *order.Order])
			router := httpadapter.NewOrderRouter(httpadapter.OrderHandlers{
				CreateOrder: create,
				RejectItems: reject,
				ServeItems:  serve,
				AddItems:    addItems,
			}, discardLogger()).WithContract(orderContract(t))

			status, resp := call(t, newEcho(router), tc.pattern, tc.body)

			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, errcodes.OrderValidationFailed.Code, resp.Error.Code)
			reject.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			serve.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			addItems.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderRouter_ContractPassesValidBody(t *testing.T) {
	create := new(MockUseCase[commands.CreateOrderCommand, *order.Order])
	create.On("Handle", mock.Anything, mock.Anything).Return(sampleOrder(t), nil).Once()
	router := httpadapter.NewOrderRouter(httpadapter.OrderHandlers{CreateOrder: create}, discardLogger()).
		WithContract(orderContract(t))

	status, resp := call(t, newEcho(router), "orders:create", `{
		"tenantId": "tenant-1",
		"tableId": "table-4",
		"customerId": null,
		"items": [{"menuItemId": "menu-1", "name": "Burger", "price": "9.00", "quantity": 2, "modifiers": ["cheese"]}]
	}`)

	require.Equal(t, http.StatusOK, status, resp.Error)
	assert.Nil(t, resp.Error)
	create.AssertExpectations(t)
}

func TestKitchenRouter_ContractRejectsWrongTypes(t *testing.T) {
	toggle := new(MockUseCase[commands.ToggleTimerCommand, *kitchen.Ticket])
	router := httpadapter.NewKitchenRouter(httpadapter.KitchenHandlers{ToggleTimer: toggle}, discardLogger()).
		WithContract(kitchenContract(t))

	status, resp := call(t, newEcho(router), "kitchen:toggle-timer",
		`{"ticketId": "`+kernel.NewUUID().String()+`", "pause": "yes"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errcodes.KitchenValidationFailed.Code, resp.Error.Code)
	toggle.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRouter_ServesSwaggerDocument(t *testing.T) {
	router := httpadapter.NewKitchenRouter(httpadapter.KitchenHandlers{}, discardLogger()).
		WithContract(kitchenContract(t))
	e := newEcho(router)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/rpc/kitchen:bump-ticket")
	assert.Len(t, doc.Paths, 13)
}
