package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, status OrderStatus) Order {
	return Order{ID: id, CustomerID: "c1", Status: status}
}

func TestAddOrderKeepsExistingOnDuplicateID(t *testing.T) {
	c := Customer{}
	c.AddOrder(order("o1", OrderStatusCreated))
	c.AddOrder(order("o2", OrderStatusCreated))

	// Same id, different fields: still the same set member.
	c.AddOrder(order("o1", OrderStatusCancelled))

	require.Len(t, c.Orders, 2)
	stored, found := c.FindOrder("o1")
	require.True(t, found)
	assert.Equal(t, OrderStatusCreated, stored.Status)
}

func TestPutOrderReplacesByID(t *testing.T) {
	c := Customer{}
	c.AddOrder(order("o1", OrderStatusCreated))
	c.AddOrder(order("o2", OrderStatusCreated))

	c.PutOrder(order("o1", OrderStatusDelivering))

	require.Len(t, c.Orders, 2)
	stored, found := c.FindOrder("o1")
	require.True(t, found)
	assert.Equal(t, OrderStatusDelivering, stored.Status)
}

func TestPutOrderAppendsWhenIDUnknown(t *testing.T) {
	c := Customer{}
	c.AddOrder(order("o1", OrderStatusCreated))

	c.PutOrder(order("o9", OrderStatusCreated))

	assert.Len(t, c.Orders, 2)
	_, found := c.FindOrder("o9")
	assert.True(t, found)
}

func TestRemoveOrder(t *testing.T) {
	c := Customer{}
	c.AddOrder(order("o1", OrderStatusCreated))
	c.AddOrder(order("o2", OrderStatusCreated))

	c.RemoveOrder("o1")
	require.Len(t, c.Orders, 1)
	_, found := c.FindOrder("o1")
	assert.False(t, found)

	// Removing an id that is not there changes nothing.
	c.RemoveOrder("o1")
	assert.Len(t, c.Orders, 1)
}

func TestFindOrderOnEmptyCustomer(t *testing.T) {
	c := Customer{}
	_, found := c.FindOrder("o1")
	assert.False(t, found)
}

func TestOrderApplyDefaults(t *testing.T) {
	o := Order{ID: "o1"}
	o.ApplyDefaults()
	assert.Equal(t, OrderStatusCreated, o.Status)

	o.Status = OrderStatusDelivered
	o.ApplyDefaults()
	assert.Equal(t, OrderStatusDelivered, o.Status)
}

func TestOrderProductSet(t *testing.T) {
	o := Order{ID: "o1"}
	o.AddProduct(Product{ID: "p1"})
	o.AddProduct(Product{ID: "p2"})
	o.RemoveProduct("p1")

	require.Len(t, o.Products, 1)
	assert.Equal(t, "p2", o.Products[0].ID)
}
