// internal/adapters/in/http/handler/catalog_handler.go
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	usecase "storefront/internal/application/usecase"
	productdom "storefront/internal/domain/product"
)

// CatalogHandler serves the product catalog.
//
// Routes:
// - GET    /products            (public, filters via query params)
// - POST   /products            (admin)
// - GET    /products/{id}       (public)
// - PUT    /products/{id}       (admin)
// - DELETE /products/{id}       (admin)
type CatalogHandler struct {
	UC    *usecase.CatalogUsecase
	Users userGetter
}

func NewCatalogHandler(uc *usecase.CatalogUsecase, users userGetter) http.Handler {
	return &CatalogHandler{UC: uc, Users: users}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "catalog handler is not ready")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	// collection: /products
	if path == "/products" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			methodNotAllowed(w)
		}
		return
	}

	// detail: /products/{id}
	if strings.HasPrefix(path, "/products/") {
		id := strings.TrimSpace(strings.TrimPrefix(path, "/products/"))
		if id == "" || strings.Contains(id, "/") {
			notFound(w)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodPut:
			h.update(w, r, id)
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			methodNotAllowed(w)
		}
		return
	}

	notFound(w)
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	products, err := h.UC.FilteredView(r.Context(), filters)
	if err != nil {
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.UC.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			notFound(w)
			return
		}
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type createProductBody struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

func (h *CatalogHandler) create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.Users) {
		return
	}

	var body createProductBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	p, err := h.UC.Add(r.Context(), usecase.CreateProductInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Image:       body.Image,
		Category:    productdom.Category(body.Category),
		Stock:       body.Stock,
	})
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

type updateProductBody struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

func (h *CatalogHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	if !requireAdmin(w, r, h.Users) {
		return
	}

	var body updateProductBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	patch := productdom.Patch{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Image:       body.Image,
		Stock:       body.Stock,
	}
	if body.Category != nil {
		c := productdom.Category(*body.Category)
		patch.Category = &c
	}

	p, err := h.UC.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			notFound(w)
			return
		}
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if !requireAdmin(w, r, h.Users) {
		return
	}

	if err := h.UC.Remove(r.Context(), id); err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			notFound(w)
			return
		}
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// parseFilters builds a product.Filters from query params. Absent params stay
// nil so their predicates are skipped.
func parseFilters(r *http.Request) (productdom.Filters, error) {
	q := r.URL.Query()
	var f productdom.Filters

	if v := strings.TrimSpace(q.Get("category")); v != "" {
		c := productdom.Category(v)
		if !c.Valid() {
			return productdom.Filters{}, errors.New("invalid category: " + v)
		}
		f.Category = &c
	}
	if v := strings.TrimSpace(q.Get("minPrice")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return productdom.Filters{}, errors.New("invalid minPrice")
		}
		f.MinPrice = &n
	}
	if v := strings.TrimSpace(q.Get("maxPrice")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return productdom.Filters{}, errors.New("invalid maxPrice")
		}
		f.MaxPrice = &n
	}
	f.Search = strings.TrimSpace(q.Get("search"))

	if v := strings.TrimSpace(q.Get("sortBy")); v != "" {
		switch productdom.SortField(v) {
		case productdom.SortByName, productdom.SortByPrice, productdom.SortByCreatedAt:
			sf := productdom.SortField(v)
			f.SortBy = &sf
		default:
			return productdom.Filters{}, errors.New("invalid sortBy: " + v)
		}
	}
	if v := strings.TrimSpace(q.Get("sortOrder")); v != "" {
		switch productdom.SortOrder(v) {
		case productdom.SortAsc, productdom.SortDesc:
			so := productdom.SortOrder(v)
			f.SortOrder = &so
		default:
			return productdom.Filters{}, errors.New("invalid sortOrder: " + v)
		}
	}
	return f, nil
}
