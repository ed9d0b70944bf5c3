package address

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/internal/platform/store"
	"github.com/carebook/carebook/internal/platform/validate"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/addresses", h.Create)
	e.GET("/addresses", h.List)
	e.GET("/addresses/:id", h.Get)
	e.PATCH("/addresses/:id", h.Update)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Street:     queryPtr(c, "street"),
		City:       queryPtr(c, "city"),
		State:      queryPtr(c, "state"),
		PostalCode: queryPtr(c, "postal_code"),
		Country:    queryPtr(c, "country"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Update(c.Request().Context(), id, &in)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) httpError(err error) error {
	var verrs validate.Errors
	switch {
	case errors.As(err, &verrs):
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"message": "validation failed",
			"fields":  verrs,
		})
	case errors.Is(err, store.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, "address with this id already exists")
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "address not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// queryPtr returns the query parameter value when the parameter is
// present, nil when it is absent. Presence matters: an empty value is a
// filter for the empty string, not "no filter".
func queryPtr(c echo.Context, name string) *string {
	if !c.QueryParams().Has(name) {
		return nil
	}
	v := c.QueryParam(name)
	return &v
}
