package admin

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type SectionAdminHandler struct {
	sectionRepo repositories.SectionRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	bundleRepo  repositories.BundleRepositoryImpl
	validate    *validator.Validate
	render      *render.Render
}

func NewSectionAdminHandler(
	sectionRepo repositories.SectionRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	validate *validator.Validate,
	rnd *render.Render,
) *SectionAdminHandler {
	return &SectionAdminHandler{
		sectionRepo: sectionRepo,
		productRepo: productRepo,
		bundleRepo:  bundleRepo,
		validate:    validate,
		render:      rnd,
	}
}

type sectionPayload struct {
	Title      string   `json:"title" validate:"required"`
	Subtitle   string   `json:"subtitle"`
	Kind       string   `json:"kind" validate:"required,oneof=hero_banner featured_products featured_bundles category_grid rich_text"`
	Position   int      `json:"position"`
	IsActive   bool     `json:"is_active"`
	ImageURL   string   `json:"image_url"`
	LinkURL    string   `json:"link_url"`
	Body       string   `json:"body"`
	ProductIDs []string `json:"product_ids"`
	BundleIDs  []string `json:"bundle_ids"`
}

func (h *SectionAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sectionRepo.GetAll(r.Context())
	if err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to list sections")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"sections": sections})
}

func (h *SectionAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeSection(w, r)
	if !ok {
		return
	}

	section, err := h.buildSection(r, &models.Section{}, payload)
	if err != nil {
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.sectionRepo.Create(r.Context(), section); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to create section")
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"section": section})
}

func (h *SectionAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.sectionRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSONError(h.render, w, http.StatusNotFound, "section not found")
			return
		}
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to fetch section")
		return
	}

	payload, ok := h.decodeSection(w, r)
	if !ok {
		return
	}

	section, err := h.buildSection(r, existing, payload)
	if err != nil {
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.sectionRepo.Update(r.Context(), section); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to update section")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"section": section})
}

func (h *SectionAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.sectionRepo.Delete(r.Context(), id); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to delete section")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *SectionAdminHandler) decodeSection(w http.ResponseWriter, r *http.Request) (*sectionPayload, bool) {
	var payload sectionPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(h.render, w, http.StatusBadRequest, "invalid JSON payload")
		return nil, false
	}
	if err := h.validate.Struct(&payload); err != nil {
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return &payload, true
}

func (h *SectionAdminHandler) buildSection(r *http.Request, section *models.Section, payload *sectionPayload) (*models.Section, error) {
	section.Title = payload.Title
	section.Subtitle = payload.Subtitle
	section.Kind = models.SectionKind(payload.Kind)
	section.Position = payload.Position
	section.IsActive = payload.IsActive
	section.ImageURL = payload.ImageURL
	section.LinkURL = payload.LinkURL
	section.Body = payload.Body

	section.Products = nil
	if len(payload.ProductIDs) > 0 {
		products, err := h.productRepo.GetByIDs(r.Context(), payload.ProductIDs)
		if err != nil {
			return nil, errors.New("failed to resolve linked products")
		}
		section.Products = products
	}

	section.Bundles = nil
	for _, bundleID := range payload.BundleIDs {
		bundle, err := h.bundleRepo.GetByID(r.Context(), bundleID)
		if err != nil {
			return nil, errors.New("unknown bundle: " + bundleID)
		}
		section.Bundles = append(section.Bundles, *bundle)
	}

	return section, nil
}
