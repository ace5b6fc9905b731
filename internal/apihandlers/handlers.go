package apihandlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hashtagset/internal/app"
	"hashtagset/internal/catalog"
	"hashtagset/internal/clix"
)

const requestIDHeader = "X-Request-ID"

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// CategoryResponse is the body of GET /categories/:name.
type CategoryResponse struct {
	Category string   `json:"category"`
	Hashtags []string `json:"hashtags"`
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.RequestLogger())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", h.ListCategoriesHandler)
		v1.GET("/categories/:name", h.GetCategoryHandler)
		v1.GET("/post", h.BuildPostHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// RequestLogger tags each request with an id and logs it once served.
func (h *APIHandler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()

		h.App.Logger.WithFields(log.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
		}).Info("request served")
	}
}

func (h *APIHandler) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.App.Catalog.Categories()})
}

func (h *APIHandler) GetCategoryHandler(c *gin.Context) {
	name := c.Param("name")
	hashtags, err := h.App.Catalog.HashtagsForCategory(name)
	if err != nil {
		h.respondWithCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": CategoryResponse{Category: name, Hashtags: hashtags}})
}

func (h *APIHandler) BuildPostHandler(c *gin.Context) {
	categories := clix.SplitList(c.Query("categories"))
	if len(categories) == 0 {
		BadRequest(c, "Missing categories query parameter")
		return
	}

	maxCount := 0
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			BadRequest(c, "Invalid max: must be a positive integer")
			return
		}
		maxCount = n
	}

	post, err := h.App.Catalog.BuildPost(categories, maxCount)
	if err != nil {
		h.respondWithCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": post})
}

func (h *APIHandler) respondWithCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		NotFound(c, err.Error())
	default:
		h.App.Logger.WithError(err).Error("catalog request failed")
		Internal(c, "failed to read hashtags")
	}
}
