package rest

import (
	"context"
	"net/http"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	SliderHandler struct {
		sliderService SliderService
	}

	SliderService interface {
		PublicSlider(ctx context.Context) ([]domain.SliderEntry, error)
	}
)

func NewSliderHandler(sliderService SliderService) *SliderHandler {
	return &SliderHandler{
		sliderService: sliderService,
	}
}

// Get serves the homepage carousel: the restaurants the last recalculation
// pass placed in the slider, in display order.
func (h *SliderHandler) Get(c echo.Context) error {
	entries, err := h.sliderService.PublicSlider(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(entries))
}
