package account

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/metacore/lims/internal/platform/apperr"
	"github.com/metacore/lims/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes wires the routes reachable without a token.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
}

// RegisterRoutes wires the routes behind the auth middleware.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/profile", h.Profile)
	g.PUT("/profile", h.UpdateProfile)
	g.POST("/security/change-email", h.ChangeEmail)
	g.POST("/security/change-password", h.ChangePassword)
	g.POST("/admin/update-credentials", h.UpdateCredentials)
}

func (h *Handler) Login(c echo.Context) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	result, err := h.svc.Login(c.Request().Context(), in.Email, in.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// accountID resolves the caller from the claims the auth middleware
// injected.
func accountID(c echo.Context) (uuid.UUID, error) {
	claims := auth.ClaimsFromContext(c.Request().Context())
	if claims == nil {
		return uuid.Nil, apperr.Auth("Token is missing")
	}
	id, err := claims.AccountID()
	if err != nil {
		return uuid.Nil, apperr.Auth("Invalid token")
	}
	return id, nil
}

func (h *Handler) Profile(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	a, err := h.svc.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	var in struct {
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	a, err := h.svc.UpdateProfile(c.Request().Context(), id, in.FullName, in.Phone, in.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": a,
	})
}

func (h *Handler) ChangeEmail(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	var in struct {
		CurrentPassword string `json:"currentPassword"`
		NewEmail        string `json:"newEmail"`
	}
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.ChangeEmail(c.Request().Context(), id, in.CurrentPassword, in.NewEmail); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Email updated successfully"})
}

func (h *Handler) ChangePassword(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	var in struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.ChangePassword(c.Request().Context(), id, in.CurrentPassword, in.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func (h *Handler) UpdateCredentials(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}
	var in struct {
		CurrentPassword string `json:"currentPassword"`
		Email           string `json:"email"`
		Password        string `json:"password"`
	}
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := h.svc.UpdateCredentials(c.Request().Context(), id, in.CurrentPassword, in.Email, in.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Credentials updated successfully"})
}
