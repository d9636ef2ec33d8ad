package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/account-service/internal/api/metrics"
	"github.com/hotelhub/account-service/internal/core/ports"
)

type HotelHandler struct {
	hotelService ports.HotelService
}

func NewHotelHandler(hotelService ports.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// Create registers a hotel profile owned by the authenticated account.
//
// @Summary      Create a hotel profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHotelRequest  true  "Hotel profile"
// @Success      201   {object}  hotelResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /api/profiles/hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	authID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req createHotelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hotel, err := h.hotelService.CreateHotelProfile(c.Request().Context(), toCreateHotelInput(req, authID))
	if err != nil {
		return err
	}

	metrics.HotelProfilesCreatedTotal.Inc()
	return respond(c, http.StatusCreated, toHotelResponse(hotel))
}

// Get returns a hotel profile owned by the authenticated account.
//
// @Summary      Get a hotel profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hotel id"
// @Success      200  {object}  hotelResponse
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/profiles/hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	authID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	hotel, err := h.hotelService.GetHotelProfile(c.Request().Context(), c.Param("id"), authID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toHotelResponse(hotel))
}
