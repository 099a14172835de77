package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"github.com/volthome/storefront/app/services"
	"gorm.io/gorm"
)

type stubBundleRepo struct {
	mock.Mock
}

var _ repositories.BundleRepositoryImpl = (*stubBundleRepo)(nil)

func (m *stubBundleRepo) GetAll(ctx context.Context, onlyAvailable bool) ([]models.Bundle, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bundle), args.Error(1)
}

func (m *stubBundleRepo) GetByID(ctx context.Context, id string) (*models.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bundle), args.Error(1)
}

func (m *stubBundleRepo) GetBySlug(ctx context.Context, slug string) (*models.Bundle, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bundle), args.Error(1)
}

func (m *stubBundleRepo) Create(ctx context.Context, bundle *models.Bundle) error {
	return m.Called(ctx, bundle).Error(0)
}

func (m *stubBundleRepo) Update(ctx context.Context, bundle *models.Bundle) error {
	return m.Called(ctx, bundle).Error(0)
}

func (m *stubBundleRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *stubBundleRepo) DecrementStock(ctx context.Context, tx *gorm.DB, bundleID string, qty int) error {
	return m.Called(ctx, tx, bundleID, qty).Error(0)
}

func starterBundle() *models.Bundle {
	return &models.Bundle{
		ID:            "bundle-1",
		Slug:          "starter-pack",
		Name:          "New Home Starter Pack",
		BundleType:    models.BundleTypeFixed,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(20),
		CartDisplay:   models.CartDisplayGrouped,
		IsAvailable:   true,
		Items: []models.BundleItem{
			{ProductID: "p-washer", Quantity: 1, EffectivePrice: decimal.NewFromInt(3000)},
			{ProductID: "p-microwave", Quantity: 1, EffectivePrice: decimal.NewFromInt(2000)},
		},
	}
}

func newBundleRouter(repo repositories.BundleRepositoryImpl) *mux.Router {
	h := NewBundleHandler(services.NewBundleService(repo), render.New())
	r := mux.NewRouter()
	r.HandleFunc("/api/bundles/{slug}", h.Detail).Methods("GET")
	r.HandleFunc("/api/bundles/{slug}/price", h.Price).Methods("POST")
	return r
}

func TestBundleDetailIncludesPricing(t *testing.T) {
	repo := new(stubBundleRepo)
	repo.On("GetBySlug", mock.Anything, "starter-pack").Return(starterBundle(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bundles/starter-pack", nil)
	rec := httptest.NewRecorder()
	newBundleRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Pricing struct {
			OriginalPrice            decimal.Decimal `json:"original_price"`
			DiscountedPrice          decimal.Decimal `json:"discounted_price"`
			Savings                  decimal.Decimal `json:"savings"`
			SavingsPercentDisplay    string          `json:"savings_percent_display"`
			FormattedDiscountedPrice string          `json:"formatted_discounted_price"`
		} `json:"pricing"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, decimal.NewFromInt(5000).Equal(body.Pricing.OriginalPrice))
	assert.True(t, decimal.NewFromInt(4000).Equal(body.Pricing.DiscountedPrice))
	assert.True(t, decimal.NewFromInt(1000).Equal(body.Pricing.Savings))
	assert.Equal(t, "20%", body.Pricing.SavingsPercentDisplay)
	assert.Equal(t, "Rs. 4,000", body.Pricing.FormattedDiscountedPrice)
}

func TestBundleDetailNotFound(t *testing.T) {
	repo := new(stubBundleRepo)
	repo.On("GetBySlug", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/bundles/ghost", nil)
	rec := httptest.NewRecorder()
	newBundleRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBundlePriceReportsIncompleteSelection(t *testing.T) {
	bundle := &models.Bundle{
		ID:            "bundle-2",
		Slug:          "build-your-kitchen",
		BundleType:    models.BundleTypeConfigurable,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		IsAvailable:   true,
		Slots: []models.BundleSlot{
			{
				ID:            "slot-fridge",
				Name:          "Refrigerator",
				IsRequired:    true,
				MinSelections: 1,
				MaxSelections: 1,
				Products: []models.BundleSlotProduct{
					{ProductID: "p-fridge", EffectivePrice: decimal.NewFromInt(92000)},
				},
			},
			{
				ID:            "slot-ac",
				Name:          "Air Conditioner",
				IsRequired:    true,
				MinSelections: 1,
				MaxSelections: 1,
				Products: []models.BundleSlotProduct{
					{ProductID: "p-ac", EffectivePrice: decimal.NewFromInt(85000)},
				},
			},
		},
	}
	repo := new(stubBundleRepo)
	repo.On("GetBySlug", mock.Anything, "build-your-kitchen").Return(bundle, nil)

	payload, _ := json.Marshal(map[string]interface{}{
		"selections": map[string][]string{
			"slot-fridge": {"p-fridge"},
			// stale reference from a since-edited bundle is priced around,
			// not failed
			"slot-ghost": {"p-fridge"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/bundles/build-your-kitchen/price", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	newBundleRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Pricing struct {
			OriginalPrice decimal.Decimal `json:"original_price"`
		} `json:"pricing"`
		Selection services.SelectionStatus `json:"selection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, decimal.NewFromInt(92000).Equal(body.Pricing.OriginalPrice))
	assert.False(t, body.Selection.IsComplete)
	assert.Equal(t, []string{"slot-ac"}, body.Selection.MissingRequiredSlots)
}

func TestBundlePriceRejectsMalformedJSON(t *testing.T) {
	repo := new(stubBundleRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/bundles/starter-pack/price", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	newBundleRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
}
