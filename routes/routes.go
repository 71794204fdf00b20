package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkzaman/customer-backend-go/config"
	"github.com/mkzaman/customer-backend-go/database"
	"github.com/mkzaman/customer-backend-go/handlers"
	customMiddleware "github.com/mkzaman/customer-backend-go/middleware"
	"github.com/mkzaman/customer-backend-go/repository"
)

func SetupRoutes(e *echo.Echo) {
	store := repository.NewCustomerRepository(database.DB)
	orderHandler := handlers.NewOrderHandler(store)
	customerHandler := handlers.NewCustomerHandler(store)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/health", handlers.GetHealth)
	api.POST("/auth/token", handlers.IssueToken)

	protected := api.Group("")
	if config.GetEnvBool("AUTH_ENABLED", false) {
		protected.Use(customMiddleware.AuthMiddleware)
	}

	// Customer routes
	protected.POST("/customers", customerHandler.CreateCustomer)
	protected.GET("/customers/:customerId", customerHandler.GetCustomer)
	protected.PUT("/customers/:customerId", customerHandler.UpdateCustomer)

	// Order sub-resource routes, all addressed through the owning customer
	protected.POST("/customerOrders/:customerId", orderHandler.CreateOrder)
	protected.PUT("/customerOrders/:customerId", orderHandler.UpdateOrder)
	protected.GET("/customerOrders/:customerId", orderHandler.GetAllOrders)
	protected.GET("/customerOrders/:customerId/:orderId", orderHandler.GetOrder)
	protected.DELETE("/customerOrders/:customerId/:orderId", orderHandler.DeleteOrder)
}
