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

type ResponseError struct {
	Message string `json:"message"`
}

type (
	RestaurantHandler struct {
		validate          *validator.Validate
		restaurantService RestaurantService
	}

	RestaurantService interface {
		Register(ctx context.Context, restaurant *domain.Restaurant) (domain.Restaurant, error)
		GetByID(ctx context.Context, id uint) (domain.Restaurant, error)
		SetVerificationStatus(ctx context.Context, id uint, to domain.VerificationStatus) error
	}

	RegisterRestaurantInput struct {
		Name string `json:"name" validate:"required"`
		City string `json:"city"`
	}

	VerificationInput struct {
		Status string `json:"status" validate:"required"`
	}
)

func NewRestaurantHandler(restaurantService RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		validate:          validator.New(),
		restaurantService: restaurantService,
	}
}

func (h *RestaurantHandler) Register(c echo.Context) error {
	user_id := c.Get("user_id").(uint)

	var request RegisterRestaurantInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate restaurant registration", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	restaurant, err := h.restaurantService.Register(c.Request().Context(), &domain.Restaurant{
		UserID: user_id,
		Name:   request.Name,
		City:   request.City,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(restaurant))
}

func (h *RestaurantHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	restaurant_id, _ := strconv.Atoi(id)

	restaurant, err := h.restaurantService.GetByID(c.Request().Context(), uint(restaurant_id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(restaurant))
}

// SetVerification moves a restaurant through the admin-approval states. The
// document review itself happens outside this API.
func (h *RestaurantHandler) SetVerification(c echo.Context) error {
	id := c.Param("id")
	restaurant_id, _ := strconv.Atoi(id)

	var request VerificationInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate verification input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	err := h.restaurantService.SetVerificationStatus(
		c.Request().Context(),
		uint(restaurant_id),
		domain.VerificationStatus(request.Status),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Verification status updated"))
}
