package doctor

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

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/ref-doctors", h.List)
	g.POST("/ref-doctors", h.Create)
	g.PUT("/ref-doctors/:id", h.Update)
	g.DELETE("/ref-doctors/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	doctors, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

func (h *Handler) Create(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.Create(c.Request().Context(), &d); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Doctor added successfully"})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid doctor id")
	}
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return apperr.Validation("invalid request body")
	}
	d.ID = id
	if err := h.svc.Update(c.Request().Context(), &d); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Doctor updated successfully"})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid doctor id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Doctor deleted successfully"})
}
