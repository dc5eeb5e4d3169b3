package report

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
	g.POST("/reports/track", h.Track)
	g.GET("/reports/count", h.Count)
	g.GET("/reports/recent", h.Recent)
	g.GET("/reports/:patientId", h.Generate)
}

func (h *Handler) Generate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return apperr.Validation("invalid patient id")
	}
	doc, err := h.svc.Generate(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) Track(c echo.Context) error {
	var in struct {
		PatientID uuid.UUID `json:"patientId"`
	}
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.Track(c.Request().Context(), in.PatientID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Report tracked successfully"})
}

func (h *Handler) Count(c echo.Context) error {
	n, err := h.svc.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}

func (h *Handler) Recent(c echo.Context) error {
	recent, err := h.svc.Recent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recent)
}
