package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/user"
)

// login authenticates against the user directory and returns the identity.
// Rejected credentials get a 401 so clients can tell them apart from a dead
// plane.
func (s *server) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	ident, err := s.opts.UserSvc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "authenticating")
	}
	return ctx.JSON(http.StatusOK, ident)
}
