// Package controllers translates HTTP requests into catalog operations and
// maps the outcomes back onto status codes and JSON bodies.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/slopestock/app/repositories"
	"github.com/shashiranjanraj/slopestock/app/services"
	"github.com/shashiranjanraj/slopestock/pkg/bind"
	"github.com/shashiranjanraj/slopestock/pkg/logger"
	"github.com/shashiranjanraj/slopestock/pkg/response"
)

// productInput is the request body for POST and PUT /api/products.
// Only presence is validated; the API accepts whatever values are present.
//
// Price and Quantity are pointers so that a present zero survives the
// required check: `{"price": 0}` is valid, a missing price is not —
// exactly the presence rule the API promises.
type productInput struct {
	Name        string   `json:"name"        validate:"required"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"       validate:"required"`
	Quantity    *int     `json:"quantity"    validate:"required"`
	SKU         *string  `json:"sku"`
}

func (in *productInput) fields() repositories.ProductFields {
	f := repositories.ProductFields{
		Name:     in.Name,
		Price:    *in.Price,
		Quantity: *in.Quantity,
		SKU:      in.SKU,
	}
	if in.Description != nil {
		f.Description = *in.Description
	}
	if in.Category != nil {
		f.Category = *in.Category
	}
	return f
}

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// Index handles GET /api/products.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	response.JSON(w, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	product, err := c.service.Find(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	response.JSON(w, product)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in productInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(r.Context(), in.fields())
	if err != nil {
		c.fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product created", "id", product.ID, "name", product.Name)
	response.Created(w, product)
}

// Update handles PUT /api/products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	var in productInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(r.Context(), id, in.fields())
	if err != nil {
		c.fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product updated", "id", product.ID)
	response.JSON(w, product)
}

// Destroy handles DELETE /api/products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := c.productID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product deleted", "id", id)
	response.Message(w, "Product deleted successfully")
}

// productID parses the {id} route parameter. A non-numeric id can never
// match a row, so it reports 404 rather than 400 — same outcome a lookup
// would have had.
func (c *ProductController) productID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.NotFound(w, "Product not found")
		return 0, false
	}
	return uint(id), true
}

// fail maps store errors onto the response contract: 404 for unknown ids,
// 409 for sku collisions, 500 (message surfaced verbatim — this is a
// trusted single-operator tool) for anything else.
func (c *ProductController) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(w, "Product not found")
	case errors.Is(err, repositories.ErrDuplicateSKU):
		response.Conflict(w, "A product with this SKU already exists")
	default:
		logger.WithCtx(r.Context()).Error("catalog request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
	}
}
