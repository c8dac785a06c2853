// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"cabby/config"
	deliverycontext "cabby/internal/delivery/context"
	"cabby/internal/delivery/http/response"
	domainerrors "cabby/internal/domain/errors"
	"cabby/internal/domain/service"
	"cabby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountView is the public projection of an account: an explicit allow-list
// of fields, never the stored entity, so the password hash cannot leak
// through serialization.
type accountView struct {
	ID    uuid.UUID    `json:"id"`
	Links accountLinks `json:"links"`
}

type accountLinks struct {
	Self     string `json:"self"`
	Bookings string `json:"bookings,omitempty"`
}

// discoveryLinks is the body of the accounts index endpoint.
type discoveryLinks struct {
	SignIn map[string]string `json:"signIn"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc       usecase.AccountUsecase
	sessions service.SessionService
	baseURL  string
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, sessions service.SessionService, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:       uc,
		sessions: sessions,
		baseURL:  strings.TrimRight(cfg.HTTP.BaseURL, "/"),
		logger:   logger,
	}
}

// Index lists the entry links of the accounts resource.
func (h *AccountHandler) Index(c echo.Context) error {
	links := discoveryLinks{
		SignIn: map[string]string{
			"user": h.baseURL + "/accounts/sign-in",
		},
	}

	return c.JSON(http.StatusOK, links)
}

// SignIn authenticates by taxi number and password and sets the session cookie.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "sign-in input rejected")
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return response.Success(c, http.StatusOK, h.projectAccount(output.UserID), "Signed in")
}

// CreateUser provisions a new account with its taxi. The generated password
// stays server-side; the response body is deliberately empty.
func (h *AccountHandler) CreateUser(c echo.Context) error {
	var input *usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid create-user input")
	}
	if err := c.Validate(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "create-user input rejected")
	}

	if err := h.uc.CreateUser(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusCreated)
}

// Me returns the account bound to the presented session cookie.
func (h *AccountHandler) Me(c echo.Context) error {
	userIDVal := c.Get(string(deliverycontext.KeyUserID))
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return errors.Wrap(domainerrors.ErrSessionInvalid, "no account id on request")
	}

	user, err := h.uc.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.projectAccount(user.ID), "Account retrieved")
}

// projectAccount builds the public view for the given account id.
func (h *AccountHandler) projectAccount(userID uuid.UUID) accountView {
	return accountView{
		ID: userID,
		Links: accountLinks{
			Self:     h.baseURL + "/accounts/me",
			Bookings: h.baseURL + "/bookings",
		},
	}
}

// setSessionCookie attaches the signed session token to the response.
func (h *AccountHandler) setSessionCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     service.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
