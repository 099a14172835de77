package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewProductHandler(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	rnd *render.Render,
) *ProductHandler {
	return &ProductHandler{productRepo: productRepo, categoryRepo: categoryRepo, render: rnd}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 24
	}
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	products, total, err := h.productRepo.GetAll(r.Context(), q.Get("category"), q.Get("search"), limit, (page-1)*limit)
	if err != nil {
		writeError(h.render, w, http.StatusInternalServerError, "failed to list products", nil)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(h.render, w, http.StatusNotFound, "product not found", nil)
			return
		}
		writeError(h.render, w, http.StatusInternalServerError, "failed to fetch product", nil)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"product": product})
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		writeError(h.render, w, http.StatusInternalServerError, "failed to list categories", nil)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
