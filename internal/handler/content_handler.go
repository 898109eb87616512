package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"azmedical/internal/content"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ContentHandler serves the static content documents over HTTP. This is
// document hosting only; no cart, auth, or order operation is exposed.
type ContentHandler struct {
	loader *content.Loader
	log    *zap.Logger
}

// DI
func NewContentHandler(loader *content.Loader, log *zap.Logger) *ContentHandler {
	return &ContentHandler{loader: loader, log: log}
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/content")

	g.GET("/products", h.getProducts)
	g.GET("/blog", h.getBlogPosts)
	g.GET("/blog/:slug", h.getBlogPost)
	g.GET("/pricing", h.getPricingPlans)
	g.GET("/dashboard", h.getDashboard)
}

func (h *ContentHandler) getProducts(c echo.Context) error {
	docs, err := h.loader.Products()
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *ContentHandler) getBlogPosts(c echo.Context) error {
	docs, err := h.loader.BlogPosts()
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *ContentHandler) getBlogPost(c echo.Context) error {
	doc, err := h.loader.BlogPost(c.Param("slug"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler) getPricingPlans(c echo.Context) error {
	docs, err := h.loader.PricingPlans()
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *ContentHandler) getDashboard(c echo.Context) error {
	doc, err := h.loader.Dashboard()
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler) writeError(c echo.Context, err error) error {
	if errors.Is(err, content.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	h.log.Error("content read failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "content error"})
}
