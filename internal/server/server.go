package server

import (
	"github.com/labstack/echo/v4"

	"azmedical/internal/handler"
)

func Start(addr string, contentH *handler.ContentHandler) error {
	e := echo.New()
	e.HideBanner = true

	RegisterRoutes(e, contentH)
	return e.Start(addr)
}
