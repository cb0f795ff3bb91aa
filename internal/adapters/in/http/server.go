// Package http provides the inbound HTTP adapter for the storefront service.
// Handlers translate JSON payloads into commands and queries, and map domain
// errors to status codes; no business rules live here.
package http

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler interfaces keep the server decoupled from the concrete command and
// query handlers so endpoint tests can substitute mocks.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	ReturnOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ReturnOrderCommand) (*order.Order, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) error
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error)
	}
	DeleteProductHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
	}
	GetAllProductsHandler interface {
		Handle(ctx context.Context, query queries.GetAllProductsQuery) ([]queries.ProductView, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (queries.ProductView, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       CreateOrderHandler
	changeOrderStatusHandler ChangeOrderStatusHandler
	cancelOrderHandler       CancelOrderHandler
	returnOrderHandler       ReturnOrderHandler
	getAllOrdersHandler      GetAllOrdersHandler
	getOrderHandler          GetOrderHandler

	createProductHandler  CreateProductHandler
	updateProductHandler  UpdateProductHandler
	deleteProductHandler  DeleteProductHandler
	getAllProductsHandler GetAllProductsHandler
	getProductHandler     GetProductHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	changeOrderStatusHandler ChangeOrderStatusHandler,
	cancelOrderHandler CancelOrderHandler,
	returnOrderHandler ReturnOrderHandler,
	getAllOrdersHandler GetAllOrdersHandler,
	getOrderHandler GetOrderHandler,
	createProductHandler CreateProductHandler,
	updateProductHandler UpdateProductHandler,
	deleteProductHandler DeleteProductHandler,
	getAllProductsHandler GetAllProductsHandler,
	getProductHandler GetProductHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		returnOrderHandler:       returnOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		getAllProductsHandler:    getAllProductsHandler,
		getProductHandler:        getProductHandler,
	}
}

// RegisterRoutes attaches all endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id", s.ChangeOrderStatus)
	e.POST("/orders/:id/cancel", s.CancelOrder)
	e.POST("/orders/:id/return", s.ReturnOrder)

	e.POST("/products", s.CreateProduct)
	e.GET("/products", s.GetProducts)
	e.GET("/products/:id", s.GetProduct)
	e.PUT("/products/:id", s.UpdateProduct)
	e.DELETE("/products/:id", s.DeleteProduct)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customer, err := order.NewCustomer(req.Customer.Name, req.Customer.Email, req.Customer.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := lineItemsFromPayload(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	shippingCost, err := kernel.NewMoney(req.ShippingCostCents)
	if err != nil {
		return writeError(ctx, err)
	}
	taxAmount, err := kernel.NewMoney(req.TaxAmountCents)
	if err != nil {
		return writeError(ctx, err)
	}
	serviceFee, err := kernel.NewMoney(req.ServiceFeeCents)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customer,
		items,
		shippingCost,
		taxAmount,
		serviceFee,
		req.ShippingAddress,
		req.BillingAddress,
		req.PaymentMethod,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Success: true,
		OrderID: orderID.String(),
	})
}

// GetOrders handles GET /orders - retrieves the full order collection.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		orders = append(orders, orderResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, OrdersResponse{Success: true, Orders: orders})
}

// GetOrder handles GET /orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelopeResponse{
		Success: true,
		Order:   orderResponseFromView(view),
	})
}

// ChangeOrderStatus handles PATCH /orders/:id - generic status transitions.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Status:  updated.Status().String(),
	})
}

// CancelOrder handles POST /orders/:id/cancel - cancels a pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReasonRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelopeResponse{
		Success: true,
		Order:   orderResponseFromDomain(cancelled),
	})
}

// ReturnOrder handles POST /orders/:id/return - returns a delivered or received order.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReasonRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	returned, err := s.returnOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelopeResponse{
		Success: true,
		Order:   orderResponseFromDomain(returned),
	})
}

// CreateProduct handles POST /products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(req.PriceCents)
	if err != nil {
		return writeError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, req.Description, price, req.Stock)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{
		Success:   true,
		ProductID: productID.String(),
	})
}

// GetProducts handles GET /products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	views, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	products := make([]ProductResponse, 0, len(views))
	for _, view := range views {
		products = append(products, productResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, ProductsResponse{Success: true, Products: products})
}

// GetProduct handles GET /products/:id - retrieves one product.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductEnvelopeResponse{
		Success: true,
		Product: productResponseFromView(view),
	})
}

// UpdateProduct handles PUT /products/:id - replaces mutable product fields.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(req.PriceCents)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, req.Name, req.Description, price, req.Stock)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductEnvelopeResponse{
		Success: true,
		Product: productResponseFromDomain(updated),
	})
}

// DeleteProduct handles DELETE /products/:id - removes a catalog product.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func lineItemsFromPayload(payloads []LineItemPayload) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(payloads))
	for _, payload := range payloads {
		productID, err := kernel.UUIDFromString(payload.ProductID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("productId", err)
		}

		unitPrice, err := kernel.NewMoney(payload.UnitPriceCents)
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(productID, payload.Name, payload.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func productResponseFromDomain(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		PriceCents:  aggregate.Price().Cents(),
		Stock:       aggregate.Stock(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func parseID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// writeError maps domain errors to HTTP status codes: validation failures are
// 400, unknown objects 404, stale versions 409, everything else 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{Success: false, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: message})
}
