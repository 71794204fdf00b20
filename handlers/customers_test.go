package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkzaman/customer-backend-go/models"
)

func customerBody(t *testing.T, c models.Customer) string {
	t.Helper()
	raw, err := json.Marshal(c)
	require.NoError(t, err)
	return string(raw)
}

func TestCreateCustomer(t *testing.T) {
	store := newFakeStore()
	h := NewCustomerHandler(store)

	payload := testCustomer()
	payload.ID = ""
	payload.BillingAddress.ID = ""
	c, rec := newContext(t, http.MethodPost, customerBody(t, payload), nil)
	require.NoError(t, h.CreateCustomer(c))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID, "store assigns the id")
	assert.Equal(t, 0, created.Version)
	assert.NotEmpty(t, created.BillingAddress.ID, "billing address id backfilled on save")
}

func TestCreateCustomerIgnoresCallerSuppliedID(t *testing.T) {
	store := newFakeStore()
	h := NewCustomerHandler(store)

	payload := testCustomer()
	payload.ID = "chosen-by-caller"
	payload.Version = 42
	c, rec := newContext(t, http.MethodPost, customerBody(t, payload), nil)
	require.NoError(t, h.CreateCustomer(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, "chosen-by-caller", created.ID)
	assert.Equal(t, 0, created.Version)
}

func TestCreateCustomerValidation(t *testing.T) {
	store := newFakeStore()
	h := NewCustomerHandler(store)

	payload := testCustomer()
	payload.FirstName = ""
	c, rec := newContext(t, http.MethodPost, customerBody(t, payload), nil)
	require.NoError(t, h.CreateCustomer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "FirstName")
	assert.Zero(t, store.saveCalls)
}

func TestGetCustomer(t *testing.T) {
	store := newFakeStore()
	store.seed(testCustomer())
	h := NewCustomerHandler(store)

	c, rec := newContext(t, http.MethodGet, "", map[string]string{"customerId": "c1"})
	require.NoError(t, h.GetCustomer(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "c1", got.ID)
}

func TestGetCustomerNotFound(t *testing.T) {
	store := newFakeStore()
	h := NewCustomerHandler(store)

	c, rec := newContext(t, http.MethodGet, "", map[string]string{"customerId": "ghost"})
	require.NoError(t, h.GetCustomer(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCustomerKeepsOrders(t *testing.T) {
	customer := testCustomer()
	customer.Orders = []models.Order{testOrder("o1")}

	store := newFakeStore()
	store.seed(customer)
	h := NewCustomerHandler(store)

	payload := testCustomer()
	payload.FirstName = "Augusta"
	payload.Orders = nil
	c, rec := newContext(t, http.MethodPut, customerBody(t, payload), map[string]string{"customerId": "c1"})
	require.NoError(t, h.UpdateCustomer(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored := store.customers["c1"]
	assert.Equal(t, "Augusta", stored.FirstName)
	assert.Len(t, stored.Orders, 1, "orders survive a customer update")
	assert.Equal(t, 4, stored.Version)
}

func TestUpdateCustomerStaleVersion(t *testing.T) {
	store := newFakeStore()
	store.seed(testCustomer())
	h := NewCustomerHandler(store)

	payload := testCustomer()
	payload.Version = 1
	c, rec := newContext(t, http.MethodPut, customerBody(t, payload), map[string]string{"customerId": "c1"})
	require.NoError(t, h.UpdateCustomer(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	// Nothing was overwritten.
	assert.Equal(t, 3, store.customers["c1"].Version)
}

func TestGetHealth(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "", nil)
	require.NoError(t, GetHealth(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
}
