package result

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

// RegisterRoutes wires the result routes. GET /tests serves the joined
// results overview; the catalog package owns the other /tests routes.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/tests", h.List)
	g.GET("/test-results", h.List)
	g.POST("/test-results", h.CreateBatch)
	g.DELETE("/test-results/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	results, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) CreateBatch(c echo.Context) error {
	var in BatchInput
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.CreateBatch(c.Request().Context(), &in); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Test results added successfully"})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.Validation("invalid test result id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Test result deleted successfully"})
}
