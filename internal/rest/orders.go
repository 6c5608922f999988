package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error)
		GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error)
		GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error)
	}

	OrdersInput struct {
		RestaurantID uint `json:"restaurant_id" validate:"required"`
		ProductID    int  `json:"product_id" validate:"required"`
		Quantity     int  `json:"quantity" validate:"required,min=1"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
	}
}

// CreateOrder places an order through the monthly order-limit gate. A limit
// rejection surfaces as a business outcome naming the owed commission.
func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	user_id := c.Get("user_id").(uint)

	var request OrdersInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	order, err := h.ordersService.CreateOrder(c.Request().Context(), domain.Orders{
		UserID:       int(user_id),
		RestaurantID: request.RestaurantID,
		ProductID:    request.ProductID,
		Quantity:     request.Quantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	user_id := c.Get("user_id").(uint)

	orders, err := h.ordersService.GetAllOrders(c.Request().Context(), int(user_id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	id := c.Param("id")
	order_id, _ := strconv.Atoi(id)

	user_id := c.Get("user_id").(uint)

	order, err := h.ordersService.GetOrder(c.Request().Context(), order_id, int(user_id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}
