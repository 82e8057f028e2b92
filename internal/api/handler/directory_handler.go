package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/core/service"
)

// favoriteChecker is the slice of the state needed to decorate providers.
type favoriteChecker interface {
	IsFavorite(providerID string) bool
}

// DirectoryHandler serves the catalog, listings, provider pages,
// self-registration and reviews.
type DirectoryHandler struct {
	service   ports.DirectoryService
	favorites favoriteChecker
}

func NewDirectoryHandler(service ports.DirectoryService, favorites favoriteChecker) *DirectoryHandler {
	return &DirectoryHandler{service: service, favorites: favorites}
}

// Catalog handles GET /v1/catalog.
//
// @Summary      Landing page catalog
// @Tags         directory
// @Produce      json
// @Success      200  {object}  catalogResponse
// @Router       /v1/catalog [get]
func (h *DirectoryHandler) Catalog(c echo.Context) error {
	cat := h.service.Catalog(c.Request().Context())
	return c.JSON(http.StatusOK, catalogResponse{Categories: cat.Categories, Featured: cat.Featured})
}

// Services handles GET /v1/services.
//
// @Summary      Service categories with provider counts
// @Tags         directory
// @Produce      json
// @Success      200  {object}  servicesResponse
// @Router       /v1/services [get]
func (h *DirectoryHandler) Services(c echo.Context) error {
	overview := h.service.Overview(c.Request().Context())
	out := make([]serviceEntry, len(overview))
	for i, s := range overview {
		out[i] = serviceEntry{CategorySummary: s, Listing: service.ListingPath(s.Category)}
	}
	return c.JSON(http.StatusOK, servicesResponse{Services: out})
}

// ListProviders handles GET /v1/services/:category/providers.
//
// @Summary      List providers of a category
// @Tags         directory
// @Produce      json
// @Param        category    path      string  true   "Category slug or name (e.g. ac-service)"
// @Param        q           query     string  false  "Matches provider name or city, case-insensitive"
// @Param        min_rating  query     number  false  "Minimum rating, 0 for all"
// @Param        city        query     string  false  "Exact city"
// @Success      200         {object}  providerListResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/services/{category}/providers [get]
func (h *DirectoryHandler) ListProviders(c echo.Context) error {
	var q listProvidersQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	res, err := h.service.ListProviders(c.Request().Context(), ports.ListProvidersInput{
		Category:  q.Category,
		Query:     q.Query,
		MinRating: q.MinRating,
		City:      q.City,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, providerListResponse{
		Category:  res.Category,
		Count:     len(res.Providers),
		Providers: res.Providers,
		Cities:    res.Cities,
	})
}

// Cities handles GET /v1/cities.
//
// @Summary      Distinct provider cities
// @Tags         directory
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/cities [get]
func (h *DirectoryHandler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Cities(c.Request().Context()))
}

// GetProvider handles GET /v1/providers/:id.
//
// @Summary      Get a provider with its reviews
// @Tags         directory
// @Produce      json
// @Param        id   path      string  true  "Provider ID"
// @Success      200  {object}  providerResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/providers/{id} [get]
func (h *DirectoryHandler) GetProvider(c echo.Context) error {
	p, err := h.service.GetProvider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.decorate(*p))
}

// Register handles POST /v1/providers.
//
// @Summary      Provider self-registration
// @Tags         directory
// @Accept       json
// @Produce      json
// @Param        body  body      registerProviderRequest  true  "Provider details"
// @Success      201   {object}  providerResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/providers [post]
func (h *DirectoryHandler) Register(c echo.Context) error {
	var req registerProviderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.RegisterProvider(c.Request().Context(), ports.RegisterProviderInput{
		Name:        req.Name,
		ServiceType: req.ServiceType,
		City:        req.City,
		Contact:     req.Contact,
		Experience:  req.Experience,
		Rating:      req.Rating,
		Photo:       req.Photo,
	})
	if err != nil {
		return err
	}

	resp := h.decorate(res.Provider)
	c.Response().Header().Set(echo.HeaderLocation, resp.Links.Self)
	return c.JSON(http.StatusCreated, resp)
}

// AddReview handles POST /v1/providers/:id/reviews.
//
// @Summary      Submit a review
// @Description  Appends a review and returns the provider with its recomputed rating.
// @Tags         directory
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Provider ID"
// @Param        body  body      addReviewRequest  true  "Review"
// @Success      201   {object}  providerResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/providers/{id}/reviews [post]
func (h *DirectoryHandler) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.AddReview(c.Request().Context(), ports.AddReviewInput{
		ProviderID: c.Param("id"),
		Name:       req.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.decorate(*p))
}

func (h *DirectoryHandler) decorate(p domain.Provider) providerResponse {
	category, _ := domain.LookupCategory(p.ServiceType)
	return providerResponse{
		Provider:   p,
		IsFavorite: h.favorites.IsFavorite(p.ID),
		Links: providerLinks{
			Self:    "/v1/providers/" + p.ID,
			Listing: service.ListingPath(category),
			Reviews: "/v1/providers/" + p.ID + "/reviews",
			Toggle:  service.TogglePath(p.ID),
		},
	}
}
