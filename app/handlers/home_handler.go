package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/repositories"
)

type HomeHandler struct {
	sectionRepo repositories.SectionRepositoryImpl
	render      *render.Render
}

func NewHomeHandler(sectionRepo repositories.SectionRepositoryImpl, rnd *render.Render) *HomeHandler {
	return &HomeHandler{sectionRepo: sectionRepo, render: rnd}
}

// Home returns the admin-curated homepage: active sections in display
// order, with their linked products and bundles resolved.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sectionRepo.GetActive(r.Context())
	if err != nil {
		writeError(h.render, w, http.StatusInternalServerError, "failed to load homepage", nil)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"sections": sections})
}
