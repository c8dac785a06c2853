// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and reports failures as a 422 HTTP error so the
// error middleware maps them deterministically.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return nil
}
