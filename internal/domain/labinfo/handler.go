package labinfo

import (
	"net/http"

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
	g.GET("/lab-info", h.Get)
	g.POST("/lab-info", h.Create)
	g.PUT("/lab-info", h.Update)
}

func (h *Handler) Get(c echo.Context) error {
	info, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) Create(c echo.Context) error {
	var info LabInfo
	if err := c.Bind(&info); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.Create(c.Request().Context(), &info); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Lab info added successfully"})
}

func (h *Handler) Update(c echo.Context) error {
	var info LabInfo
	if err := c.Bind(&info); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.Update(c.Request().Context(), &info); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Lab info updated successfully"})
}
