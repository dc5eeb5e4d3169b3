package catalog

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/metacore/lims/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the catalog mutations and the grouped category
// view. The flat GET /tests route belongs to the result package, which
// serves recorded results under that path.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/tests", h.Create)
	g.PUT("/tests/:id", h.Update)
	g.DELETE("/tests/:id", h.Delete)
	g.GET("/tests/categories", h.Categories)
}

func (h *Handler) Create(c echo.Context) error {
	var e Entry
	if err := c.Bind(&e); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.Create(c.Request().Context(), &e); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Test added successfully"})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid test id")
	}
	var e Entry
	if err := c.Bind(&e); err != nil {
		return apperr.Validation("invalid request body")
	}
	e.ID = id
	if err := h.svc.Update(c.Request().Context(), &e); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Test updated successfully"})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid test id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Test deleted successfully"})
}

func (h *Handler) Categories(c echo.Context) error {
	groups, err := h.svc.Grouped(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}
