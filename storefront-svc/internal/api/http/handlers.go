package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Accounts    service.AccountServiceInterface
	Orders      service.OrderServiceInterface
	Prices      service.PriceServiceInterface
	Restaurants service.RestaurantServiceInterface
	Sizes       service.SizeServiceInterface
	Dishes      service.DishServiceInterface
	Logger      *zap.Logger
}

func NewHandler(
	accounts service.AccountServiceInterface,
	orders service.OrderServiceInterface,
	prices service.PriceServiceInterface,
	restaurants service.RestaurantServiceInterface,
	sizes service.SizeServiceInterface,
	dishes service.DishServiceInterface,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Accounts:    accounts,
		Orders:      orders,
		Prices:      prices,
		Restaurants: restaurants,
		Sizes:       sizes,
		Dishes:      dishes,
		Logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/signup/user", h.signUpUser).Methods("POST")
	r.HandleFunc("/signup/restaurant", h.signUpRestaurant).Methods("POST")
	r.HandleFunc("/login", h.signIn).Methods("POST")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/sizes", h.getRestaurantSizes).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dishes/{id}/prices", h.getDishPrices).Methods("GET")

	api := r.NewRoute().Subrouter()
	api.Use(h.Authenticate)

	api.HandleFunc("/api/logout", h.signOut).Methods("POST")
	api.HandleFunc("/api/me", h.me).Methods("GET")

	user := RequireRole(domain.RoleUser)
	api.Handle("/api/me/alexa", user(h.linkAlexa)).Methods("PUT")
	api.Handle("/api/me/alexa", user(h.unlinkAlexa)).Methods("DELETE")
	api.Handle("/api/cart", user(h.getCart)).Methods("GET")
	api.Handle("/api/cart/items", user(h.addToCart)).Methods("POST")
	api.Handle("/api/orders", user(h.getUserOrders)).Methods("GET")
	api.Handle("/api/orders/{id}", user(h.getUserOrder)).Methods("GET")
	api.Handle("/api/orders/{id}", user(h.deleteOrder)).Methods("DELETE")
	api.Handle("/api/orders/{id}/items", user(h.addLineItem)).Methods("POST")
	api.Handle("/api/orders/{id}/items/{priceId}", user(h.editLineItem)).Methods("PUT")
	api.Handle("/api/orders/{id}/items/{priceId}", user(h.removeLineItem)).Methods("DELETE")
	api.Handle("/api/orders/{id}/place", user(h.placeOrder)).Methods("POST")
	api.Handle("/api/orders/{id}/cancel", user(h.cancelOrder)).Methods("POST")
	api.Handle("/api/orders/{id}/total", user(h.getOrderTotal)).Methods("GET")
	api.Handle("/api/orders/{id}/qrcode", user(h.getOrderQRCode)).Methods("GET")

	rest := RequireRole(domain.RoleRestaurant)
	api.Handle("/api/restaurant/orders", rest(h.getRestaurantOrders)).Methods("GET")
	api.Handle("/api/restaurant/orders/{id}/accept", rest(h.acceptOrder)).Methods("POST")
	api.Handle("/api/restaurant/orders/{id}/decline", rest(h.declineOrder)).Methods("POST")
	api.Handle("/api/restaurant/orders/{id}/pickup", rest(h.markPickedUp)).Methods("POST")
	api.Handle("/api/restaurant/accepting", rest(h.setAcceptingOrders)).Methods("PUT")
	api.Handle("/api/restaurant/address", rest(h.updateAddress)).Methods("PUT")
	api.Handle("/api/restaurant/logo", rest(h.replaceLogo)).Methods("POST")
	api.Handle("/api/restaurant/sizes", rest(h.addSize)).Methods("POST")
	api.Handle("/api/restaurant/sizes/order", rest(h.reorderSizes)).Methods("PUT")
	api.Handle("/api/restaurant/sizes/{id}", rest(h.renameSize)).Methods("PUT")
	api.Handle("/api/restaurant/sizes/{id}", rest(h.deleteSize)).Methods("DELETE")
	api.Handle("/api/restaurant/dishes", rest(h.createDish)).Methods("POST")
	api.Handle("/api/restaurant/dishes/{id}", rest(h.updateDish)).Methods("PUT")
	api.Handle("/api/restaurant/dishes/{id}", rest(h.deleteDish)).Methods("DELETE")
	api.Handle("/api/restaurant/dishes/{id}/availability", rest(h.setDishAvailable)).Methods("PUT")
	api.Handle("/api/restaurant/dishes/{id}/prices", rest(h.saveDishPrices)).Methods("PUT")

	admin := RequireRole(domain.RoleAdmin)
	api.Handle("/api/admin/restaurants", admin(h.getRestaurants)).Methods("GET")
	api.Handle("/api/admin/restaurants/{id}", admin(h.adminDeleteRestaurant)).Methods("DELETE")
	api.Handle("/api/admin/dishes", admin(h.adminGetDishes)).Methods("GET")
	api.Handle("/api/admin/dishes/{id}", admin(h.adminDeleteDish)).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) logError(r *http.Request, err error) {
	h.Logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// formImage reads an optional image from a multipart form. The returned close func is
// never nil.
func formImage(r *http.Request, field string) (*domain.Upload, func(), error) {
	noop := func() {}
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, fmt.Errorf("%w: error retrieving %s", domain.ErrInvalidInput, field)
	}
	if contentType := header.Header.Get("Content-Type"); !allowedImageTypes[contentType] {
		file.Close()
		return nil, noop, fmt.Errorf("%w: only JPEG, PNG, GIF and WebP images are allowed", domain.ErrInvalidInput)
	}
	upload := &domain.Upload{
		Filename: filepath.Base(header.Filename),
		Body:     file,
	}
	return upload, func() { file.Close() }, nil
}

func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form or file too large", http.StatusBadRequest)
		return false
	}
	return true
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}
