package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/ssapkota/hamropasal/app/configs"
	"github.com/ssapkota/hamropasal/app/handlers"
	"github.com/ssapkota/hamropasal/app/middlewares"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/services"
	"github.com/ssapkota/hamropasal/app/utils/renderer"
	"github.com/ssapkota/hamropasal/app/utils/sessions"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto the mux
// router. Mutating routes sit behind CSRF; account routes additionally
// behind the auth middleware.
func NewRouter(db *gorm.DB, keys *configs.SessionKeys, csrfKey []byte) *mux.Router {
	render := renderer.New()
	validate := validator.New()

	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	cartStore := sessions.NewCookieCartStore(keys.AuthKey, keys.EncKey)

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)
	blogRepo := repositories.NewBlogRepository(db)

	reviewSvc := services.NewReviewService(reviewRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo)
	orderSvc := services.NewOrderService(orderRepo)
	gateway := services.NewKhaltiService(configs.LoadENV.KhaltiBaseURL, configs.LoadENV.KhaltiSecretKey, configs.LoadENV.AppURL)

	homeHandler := handlers.NewHomeHandler(productRepo, categoryRepo, offerRepo, render)
	productHandler := handlers.NewProductHandler(productRepo, reviewRepo, reviewSvc, render, validate)
	searchHandler := handlers.NewSearchHandler(productRepo, render)
	cartHandler := handlers.NewCartHandler(productRepo, cartStore, render)
	wishlistHandler := handlers.NewWishlistHandler(wishlistSvc, wishlistRepo, productRepo, render)
	blogHandler := handlers.NewBlogHandler(blogRepo, render)
	authHandler := handlers.NewAuthHandler(userRepo, sessionStore, render, validate)
	profileHandler := handlers.NewProfileHandler(userRepo, orderRepo, wishlistRepo, render, validate)
	orderHandler := handlers.NewOrderHandler(orderSvc, orderRepo, cartStore, render)
	paymentHandler := handlers.NewPaymentHandler(gateway, orderRepo, render, configs.LoadENV.AppURL)
	pagesHandler := handlers.NewPagesHandler(render)

	csrfMiddleware := csrf.Protect(
		csrfKey,
		csrf.Secure(configs.LoadENV.AppEnv == "production"),
		csrf.Path("/"),
	)
	authRequired := middlewares.AuthRequired(sessionStore, userRepo)

	router := mux.NewRouter()
	// The exemption must be marked before csrf.Protect runs; the token
	// header can only be written after it.
	router.Use(middlewares.CSRFExempt("/verify/"))
	router.Use(csrfMiddleware)
	router.Use(middlewares.CSRFToken())
	router.Use(middlewares.CartCount(cartStore))

	// Public storefront.
	router.HandleFunc("/", homeHandler.Index).Methods(http.MethodGet)
	router.HandleFunc("/search/", searchHandler.Search).Methods(http.MethodGet)
	router.HandleFunc("/product_detail/{id}", productHandler.Detail).Methods(http.MethodGet)
	router.HandleFunc("/blog/", blogHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/blog/{slug}/", blogHandler.Detail).Methods(http.MethodGet)
	router.HandleFunc("/about_us/", pagesHandler.About).Methods(http.MethodGet)
	router.HandleFunc("/contact/", pagesHandler.ContactPage).Methods(http.MethodGet)
	router.HandleFunc("/contact/", pagesHandler.Contact).Methods(http.MethodPost)

	// Auth.
	router.HandleFunc("/register/", authHandler.RegisterPage).Methods(http.MethodGet)
	router.HandleFunc("/register/", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login/", authHandler.LoginPage).Methods(http.MethodGet)
	router.HandleFunc("/login/", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout/", authHandler.Logout).Methods(http.MethodGet)

	// Review submission needs a user.
	review := router.PathPrefix("/product_detail/{id}").Subrouter()
	review.Use(authRequired)
	review.HandleFunc("", productHandler.SubmitReview).Methods(http.MethodPost)

	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(authRequired)
	cart.HandleFunc("/add/{id}/", cartHandler.Add).Methods(http.MethodGet)
	cart.HandleFunc("/item_increment/{id}/", cartHandler.Increment).Methods(http.MethodGet)
	cart.HandleFunc("/item_decrement/{id}/", cartHandler.Decrement).Methods(http.MethodGet)
	cart.HandleFunc("/item_clear/{id}/", cartHandler.ItemClear).Methods(http.MethodGet)
	cart.HandleFunc("/cart_clear/", cartHandler.CartClear).Methods(http.MethodGet)
	cart.HandleFunc("/cart-detail/", cartHandler.Detail).Methods(http.MethodGet)

	wishlist := router.PathPrefix("/wishlist").Subrouter()
	wishlist.Use(authRequired)
	wishlist.HandleFunc("/", wishlistHandler.List).Methods(http.MethodGet)
	wishlist.HandleFunc("/", wishlistHandler.ToggleForm).Methods(http.MethodPost)
	wishlist.HandleFunc("/add/{id}/", wishlistHandler.Add).Methods(http.MethodGet)
	wishlist.HandleFunc("/remove/{id}/", wishlistHandler.Remove).Methods(http.MethodGet)
	wishlist.HandleFunc("/toggle/{id}/", wishlistHandler.Toggle).Methods(http.MethodGet)

	account := router.PathPrefix("/").Subrouter()
	account.Use(authRequired)
	account.HandleFunc("/profile_dashboard/", profileHandler.Dashboard).Methods(http.MethodGet)
	account.HandleFunc("/profile/", profileHandler.Show).Methods(http.MethodGet)
	account.HandleFunc("/profile/", profileHandler.Update).Methods(http.MethodPost)
	account.HandleFunc("/my_order/", orderHandler.List).Methods(http.MethodGet)
	account.HandleFunc("/my_order/", orderHandler.Place).Methods(http.MethodPost)
	account.HandleFunc("/initkhalti/{id}", paymentHandler.InitKhalti).Methods(http.MethodGet)
	account.HandleFunc("/verify/", paymentHandler.Verify).Methods(http.MethodGet, http.MethodPost)

	return router
}
