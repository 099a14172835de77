package seeders

import (
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

// DBSeed loads a small demo catalog: categories, appliances, one fixed
// and one configurable bundle, a coupon, and the homepage sections that
// surface them. Safe to re-run; existing rows are matched by slug/code.
func DBSeed(db *gorm.DB) error {
	categories, err := seedCategories(db)
	if err != nil {
		return err
	}

	products, err := seedProducts(db, categories)
	if err != nil {
		return err
	}

	bundles, err := seedBundles(db, products)
	if err != nil {
		return err
	}

	if err := seedCoupons(db); err != nil {
		return err
	}

	if err := seedSections(db, products, bundles); err != nil {
		return err
	}

	logrus.Info("demo data seeded")
	return nil
}

func seedCategories(db *gorm.DB) (map[string]*models.Category, error) {
	names := []string{"Refrigerators", "Washing Machines", "Air Conditioners", "Microwave Ovens", "Water Dispensers"}

	out := make(map[string]*models.Category, len(names))
	for _, name := range names {
		category := &models.Category{Name: name, Slug: slug.Make(name)}
		if err := db.FirstOrCreate(category, "slug = ?", category.Slug).Error; err != nil {
			return nil, err
		}
		out[category.Slug] = category
	}
	return out, nil
}

type demoProduct struct {
	name            string
	brand           string
	category        string
	price           int64
	discountedPrice int64
	stock           int
	warrantyMonths  int
}

func seedProducts(db *gorm.DB, categories map[string]*models.Category) (map[string]*models.Product, error) {
	demos := []demoProduct{
		{"VoltHome Frost-Free Refrigerator 350L", "VoltHome", "refrigerators", 92000, 0, 15, 24},
		{"VoltHome Inverter Refrigerator 450L", "VoltHome", "refrigerators", 135000, 128500, 8, 24},
		{"VoltHome Top-Load Washer 9kg", "VoltHome", "washing-machines", 54000, 0, 20, 12},
		{"VoltHome Front-Load Washer 8kg", "VoltHome", "washing-machines", 78000, 72000, 12, 24},
		{"VoltHome Inverter AC 1.5 Ton", "VoltHome", "air-conditioners", 115000, 0, 25, 36},
		{"VoltHome Inverter AC 1 Ton", "VoltHome", "air-conditioners", 89000, 85000, 18, 36},
		{"VoltHome Microwave Oven 28L", "VoltHome", "microwave-ovens", 24500, 0, 30, 12},
		{"VoltHome Grill Microwave 32L", "VoltHome", "microwave-ovens", 32000, 29500, 16, 12},
		{"VoltHome Water Dispenser 3-Tap", "VoltHome", "water-dispensers", 28000, 0, 22, 12},
	}

	out := make(map[string]*models.Product, len(demos))
	for _, demo := range demos {
		productSlug := slug.Make(demo.name)
		product := &models.Product{
			Name:           demo.name,
			Slug:           productSlug,
			Sku:            "VH-" + productSlug,
			Brand:          demo.brand,
			Price:          decimal.NewFromInt(demo.price),
			Stock:          demo.stock,
			IsActive:       true,
			WarrantyMonths: demo.warrantyMonths,
			Categories:     []models.Category{*categories[demo.category]},
		}
		if demo.discountedPrice > 0 {
			product.DiscountedPrice = decimal.NewFromInt(demo.discountedPrice)
		}
		if err := db.FirstOrCreate(product, "slug = ?", product.Slug).Error; err != nil {
			return nil, err
		}
		out[product.Slug] = product
	}
	return out, nil
}

func seedBundles(db *gorm.DB, products map[string]*models.Product) (map[string]*models.Bundle, error) {
	out := make(map[string]*models.Bundle, 2)

	washer := products["volthome-top-load-washer-9kg"]
	microwave := products["volthome-microwave-oven-28l"]
	dispenser := products["volthome-water-dispenser-3-tap"]

	endsAt := time.Now().AddDate(0, 1, 0)
	stock := 10

	starter := &models.Bundle{
		Slug:           "new-home-starter-pack",
		Name:           "New Home Starter Pack",
		Description:    "Washer, microwave and water dispenser for a fresh start.",
		BundleType:     models.BundleTypeFixed,
		DiscountType:   models.DiscountPercentage,
		DiscountValue:  decimal.NewFromInt(15),
		CartDisplay:    models.CartDisplayGrouped,
		IsAvailable:    true,
		StockRemaining: &stock,
		ShowSavings:    true,
		ShowCountdown:  true,
		EndsAt:         &endsAt,
		CtaText:        "Claim the Starter Pack",
		BadgeText:      "Limited",
		BadgeColor:     "red",
		Items: []models.BundleItem{
			{ProductID: washer.ID, Quantity: 1, EffectivePrice: washer.EffectivePrice()},
			{ProductID: microwave.ID, Quantity: 1, EffectivePrice: microwave.EffectivePrice()},
			{ProductID: dispenser.ID, Quantity: 1, EffectivePrice: dispenser.EffectivePrice()},
		},
	}
	if err := db.FirstOrCreate(starter, "slug = ?", starter.Slug).Error; err != nil {
		return nil, err
	}
	out[starter.Slug] = starter

	fridgeSmall := products["volthome-frost-free-refrigerator-350l"]
	fridgeLarge := products["volthome-inverter-refrigerator-450l"]
	acSmall := products["volthome-inverter-ac-1-ton"]
	acLarge := products["volthome-inverter-ac-1-5-ton"]
	grill := products["volthome-grill-microwave-32l"]

	kitchen := &models.Bundle{
		Slug:          "build-your-kitchen",
		Name:          "Build Your Kitchen",
		Description:   "Pick a refrigerator, pick a cooling option, add extras.",
		BundleType:    models.BundleTypeConfigurable,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		CartDisplay:   models.CartDisplayIndividual,
		IsAvailable:   true,
		ShowSavings:   true,
		CtaText:       "Build Yours",
		Slots: []models.BundleSlot{
			{
				Name:          "Refrigerator",
				Position:      1,
				IsRequired:    true,
				MinSelections: 1,
				MaxSelections: 1,
				Products: []models.BundleSlotProduct{
					{ProductID: fridgeSmall.ID, Position: 1, EffectivePrice: fridgeSmall.EffectivePrice()},
					{ProductID: fridgeLarge.ID, Position: 2, EffectivePrice: fridgeLarge.EffectivePrice()},
				},
			},
			{
				Name:          "Air Conditioner",
				Position:      2,
				IsRequired:    true,
				MinSelections: 1,
				MaxSelections: 1,
				Products: []models.BundleSlotProduct{
					{ProductID: acSmall.ID, Position: 1, EffectivePrice: acSmall.EffectivePrice()},
					{ProductID: acLarge.ID, Position: 2, EffectivePrice: acLarge.EffectivePrice()},
				},
			},
			{
				Name:           "Extras",
				Position:       3,
				IsRequired:     false,
				AllowsMultiple: true,
				MinSelections:  0,
				MaxSelections:  2,
				Products: []models.BundleSlotProduct{
					{ProductID: grill.ID, Position: 1, EffectivePrice: grill.EffectivePrice()},
					{ProductID: dispenser.ID, Position: 2, EffectivePrice: dispenser.EffectivePrice()},
				},
			},
		},
	}
	if err := db.FirstOrCreate(kitchen, "slug = ?", kitchen.Slug).Error; err != nil {
		return nil, err
	}
	out[kitchen.Slug] = kitchen

	return out, nil
}

func seedCoupons(db *gorm.DB) error {
	expires := time.Now().AddDate(0, 3, 0)
	coupons := []models.Coupon{
		{
			Code:        "WELCOME10",
			CouponType:  models.CouponPercentage,
			Value:       decimal.NewFromInt(10),
			MinSubtotal: decimal.NewFromInt(20000),
			IsActive:    true,
			ExpiresAt:   &expires,
		},
		{
			Code:        "FLAT5000",
			CouponType:  models.CouponFixedAmount,
			Value:       decimal.NewFromInt(5000),
			MinSubtotal: decimal.NewFromInt(100000),
			IsActive:    true,
			ExpiresAt:   &expires,
		},
	}
	for i := range coupons {
		if err := db.FirstOrCreate(&coupons[i], "code = ?", coupons[i].Code).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSections(db *gorm.DB, products map[string]*models.Product, bundles map[string]*models.Bundle) error {
	hero := &models.Section{
		Title:    "Summer Cooling Sale",
		Subtitle: "Up to 15% off inverter ACs and bundles",
		Kind:     models.SectionKindHeroBanner,
		Position: 1,
		IsActive: true,
		ImageURL: "/images/sections/summer-sale.jpg",
		LinkURL:  "/bundles/new-home-starter-pack",
	}
	if err := db.FirstOrCreate(hero, "title = ?", hero.Title).Error; err != nil {
		return err
	}

	featuredBundles := &models.Section{
		Title:    "Bundle & Save",
		Kind:     models.SectionKindFeaturedBundles,
		Position: 2,
		IsActive: true,
		Bundles: []models.Bundle{
			*bundles["new-home-starter-pack"],
			*bundles["build-your-kitchen"],
		},
	}
	if err := db.FirstOrCreate(featuredBundles, "title = ?", featuredBundles.Title).Error; err != nil {
		return err
	}

	featuredProducts := &models.Section{
		Title:    "Best Sellers",
		Kind:     models.SectionKindFeaturedProducts,
		Position: 3,
		IsActive: true,
		Products: []models.Product{
			*products["volthome-inverter-ac-1-5-ton"],
			*products["volthome-inverter-refrigerator-450l"],
			*products["volthome-front-load-washer-8kg"],
		},
	}
	return db.FirstOrCreate(featuredProducts, "title = ?", featuredProducts.Title).Error
}
