package server

import (
	"github.com/labstack/echo/v4"

	"azmedical/internal/handler"
)

func RegisterRoutes(e *echo.Echo, contentH *handler.ContentHandler) {
	contentH.RegisterRoutes(e)
}
