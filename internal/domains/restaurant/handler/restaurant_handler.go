package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/domains/restaurant/service"
	"eco-restaurants/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler handles HTTP requests for the restaurant domain
type RestaurantHandler struct {
	service service.ServiceInterface
}

// NewRestaurantHandler creates a new restaurant handler instance
func NewRestaurantHandler(service service.ServiceInterface) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
	}
}

// RegisterRoutes mounts the restaurant routes on rg. Static paths are
// registered before /:id.
func (h *RestaurantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	restaurants := rg.Group("/restaurants")
	{
		restaurants.GET("/categories", h.ListCategories)
		restaurants.GET("/search/suggestions", h.SuggestNames)
		restaurants.GET("/stats/overview", h.GetStats)
		restaurants.GET("", h.ListRestaurants)
		restaurants.POST("", h.CreateRestaurant)
		restaurants.GET("/:id", h.GetRestaurant)
		restaurants.PUT("/:id", h.UpdateRestaurant)
		restaurants.DELETE("/:id", h.DeleteRestaurant)
	}
}

// ListRestaurants handles GET /restaurants
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		writeError(c, model.NewInvalidArgument("invalid query parameter", err))
		return
	}

	restaurants, err := h.service.ListRestaurants(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	meta := &response.Meta{
		Skip:  valueOr(filter.Skip, 0),
		Limit: valueOr(filter.Limit, model.DefaultListLimit),
		Count: len(restaurants),
	}
	response.SuccessWithMeta(c, http.StatusOK, "Restaurants retrieved successfully", restaurants, meta)
}

// GetRestaurant handles GET /restaurants/:id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.service.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Restaurant retrieved successfully", restaurant)
}

// SuggestNames handles GET /restaurants/search/suggestions?q=
func (h *RestaurantHandler) SuggestNames(c *gin.Context) {
	names, err := h.service.SuggestNames(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Suggestions retrieved successfully", names)
}

// CreateRestaurant handles POST /restaurants
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req model.CreateRestaurantRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, model.NewInvalidArgument("invalid request payload", err))
		return
	}

	restaurant, err := h.service.CreateRestaurant(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Restaurant created successfully", restaurant)
}

// UpdateRestaurant handles PUT /restaurants/:id
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	var req model.UpdateRestaurantRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, model.NewInvalidArgument("invalid request payload", err))
		return
	}

	restaurant, err := h.service.UpdateRestaurant(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Restaurant updated successfully", restaurant)
}

// DeleteRestaurant handles DELETE /restaurants/:id
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	if err := h.service.DeleteRestaurant(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Restaurant deleted successfully", nil)
}

// GetStats handles GET /restaurants/stats/overview
func (h *RestaurantHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Statistics retrieved successfully", stats)
}

// ListCategories handles GET /restaurants/categories
func (h *RestaurantHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, "Categories retrieved successfully", h.service.ListCategories())
}

func writeError(c *gin.Context, err error) {
	statusCode, message, code := model.GetErrorResponse(err)
	if statusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.ErrorResponse(c, statusCode, message, code)
}

// parseListFilter type-coerces the list query parameters. Range checks are
// left to the service.
func parseListFilter(c *gin.Context) (model.ListFilter, error) {
	var f model.ListFilter
	var err error

	if v, ok := c.GetQuery("search"); ok {
		f.Search = &v
	}
	if v, ok := c.GetQuery("category"); ok {
		f.Category = &v
	}
	if f.HasPool, err = queryParam(c, "hasPool", strconv.ParseBool); err != nil {
		return f, err
	}
	if f.RatingMin, err = queryParam(c, "rating_min", parseFloat); err != nil {
		return f, err
	}
	if f.RatingMax, err = queryParam(c, "rating_max", parseFloat); err != nil {
		return f, err
	}
	if f.Limit, err = queryParam(c, "limit", strconv.Atoi); err != nil {
		return f, err
	}
	if f.Skip, err = queryParam(c, "skip", strconv.Atoi); err != nil {
		return f, err
	}
	return f, nil
}

// queryParam parses an optional query parameter. Absent or empty yields nil.
func queryParam[T any](c *gin.Context, name string, parse func(string) (T, error)) (*T, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot parse %q", name, raw)
	}
	return &v, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
