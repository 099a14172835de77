package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/configs"
	"github.com/volthome/storefront/app/handlers"
	"github.com/volthome/storefront/app/handlers/admin"
	"github.com/volthome/storefront/app/middlewares"
	"github.com/volthome/storefront/app/repositories"
	"github.com/volthome/storefront/app/services"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	rnd := render.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	bundleRepo := repositories.NewBundleRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	dealerRepo := repositories.NewDealerRepository(db)
	requestRepo := repositories.NewServiceRequestRepository(db)
	sectionRepo := repositories.NewSectionRepository(db)

	bundleSvc := services.NewBundleService(bundleRepo)
	cartSvc := services.NewCartService(cartRepo, cartItemRepo, productRepo, bundleRepo, couponRepo)
	paymentSvc := services.NewPaymentService()
	checkoutSvc := services.NewCheckoutService(cartSvc, cartRepo, cartItemRepo, productRepo, bundleRepo, orderRepo, paymentSvc)
	dealerSvc := services.NewDealerService(dealerRepo)
	requestSvc := services.NewServiceRequestService(requestRepo, productRepo)

	homeHandler := handlers.NewHomeHandler(sectionRepo, rnd)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, rnd)
	bundleHandler := handlers.NewBundleHandler(bundleSvc, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, rnd)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, validate, rnd)
	dealerHandler := handlers.NewDealerHandler(dealerSvc, validate, rnd)
	requestHandler := handlers.NewServiceRequestHandler(requestSvc, validate, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.RecoverMiddleware)
	router.Use(middlewares.RequestLoggerMiddleware)
	router.Use(middlewares.SessionManagerMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/home", homeHandler.Home).Methods("GET")

	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/{slug}", productHandler.Detail).Methods("GET")
	api.HandleFunc("/categories", productHandler.Categories).Methods("GET")

	api.HandleFunc("/bundles", bundleHandler.List).Methods("GET")
	api.HandleFunc("/bundles/{slug}", bundleHandler.Detail).Methods("GET")
	api.HandleFunc("/bundles/{slug}/price", bundleHandler.Price).Methods("POST")

	api.HandleFunc("/cart", cartHandler.Get).Methods("GET")
	api.HandleFunc("/cart/items", cartHandler.AddProduct).Methods("POST")
	api.HandleFunc("/cart/bundles", cartHandler.AddBundle).Methods("POST")
	api.HandleFunc("/cart/items/{id}", cartHandler.UpdateItem).Methods("PATCH")
	api.HandleFunc("/cart/items/{id}", cartHandler.RemoveItem).Methods("DELETE")
	api.HandleFunc("/cart", cartHandler.Clear).Methods("DELETE")
	api.HandleFunc("/cart/coupon", cartHandler.ApplyCoupon).Methods("POST")
	api.HandleFunc("/cart/coupon", cartHandler.RemoveCoupon).Methods("DELETE")

	api.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	api.HandleFunc("/orders/{code}", checkoutHandler.GetOrder).Methods("GET")

	api.HandleFunc("/dealers/register", dealerHandler.Register).Methods("POST")

	api.HandleFunc("/service-requests", requestHandler.Create).Methods("POST")
	api.HandleFunc("/service-requests/{code}", requestHandler.Track).Methods("GET")

	sectionAdmin := admin.NewSectionAdminHandler(sectionRepo, productRepo, bundleRepo, validate, rnd)
	bundleAdmin := admin.NewBundleAdminHandler(bundleRepo, productRepo, validate, rnd)
	dealerAdmin := admin.NewDealerAdminHandler(dealerRepo, rnd)
	serviceAdmin := admin.NewServiceAdminHandler(requestRepo, rnd)

	csrfProtect := csrf.Protect(
		[]byte(configs.LoadENV.CSRFKey),
		csrf.Secure(configs.LoadENV.AppEnv == "production"),
		csrf.Path("/admin"),
	)

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(csrfProtect)

	adminRouter.HandleFunc("/sections", sectionAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/sections", sectionAdmin.Create).Methods("POST")
	adminRouter.HandleFunc("/sections/{id}", sectionAdmin.Update).Methods("PUT")
	adminRouter.HandleFunc("/sections/{id}", sectionAdmin.Delete).Methods("DELETE")

	adminRouter.HandleFunc("/bundles", bundleAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/bundles", bundleAdmin.Create).Methods("POST")
	adminRouter.HandleFunc("/bundles/{id}", bundleAdmin.Update).Methods("PUT")
	adminRouter.HandleFunc("/bundles/{id}", bundleAdmin.Delete).Methods("DELETE")

	adminRouter.HandleFunc("/dealers", dealerAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/dealers/{id}/status", dealerAdmin.UpdateStatus).Methods("PATCH")

	adminRouter.HandleFunc("/service-requests", serviceAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/service-requests/{id}/status", serviceAdmin.UpdateStatus).Methods("PATCH")

	return router
}
