package httpapi

import (
	"net/http"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"

	"github.com/gorilla/mux"
)

type acceptingRequest struct {
	AcceptingOrders bool `json:"acceptingOrders"`
}

type addressRequest struct {
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

type sizeRequest struct {
	Name string `json:"name"`
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

type pricesRequest struct {
	Prices []struct {
		SizeID string  `json:"sizeId"`
		Price  float64 `json:"price"`
	} `json:"prices"`
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurantSizes(w http.ResponseWriter, r *http.Request) {
	sizes, err := h.Sizes.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sizes)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Dishes.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) getDishPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.Prices.ListForDish(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

func (h *Handler) setAcceptingOrders(w http.ResponseWriter, r *http.Request) {
	var req acceptingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rest, err := h.Restaurants.SetAcceptingOrders(r.Context(), caller(r).AccountID, req.AcceptingOrders)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rest, err := h.Restaurants.UpdateAddress(r.Context(), caller(r).AccountID, req.Address, req.PostalCode, req.City)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) replaceLogo(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	logo, closeLogo, err := formImage(r, "logo")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer closeLogo()

	rest, err := h.Restaurants.ReplaceLogo(r.Context(), caller(r).AccountID, logo)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) addSize(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	size, err := h.Sizes.Add(r.Context(), caller(r).AccountID, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, size)
}

func (h *Handler) renameSize(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	size, err := h.Sizes.Rename(r.Context(), caller(r).AccountID, mux.Vars(r)["id"], req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, size)
}

func (h *Handler) deleteSize(w http.ResponseWriter, r *http.Request) {
	if err := h.Sizes.Delete(r.Context(), caller(r).AccountID, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reorderSizes(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sizes, err := h.Sizes.Reorder(r.Context(), caller(r).AccountID, req.IDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sizes)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	thumbnail, closeThumbnail, err := formImage(r, "thumbnail")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer closeThumbnail()

	session := caller(r)
	dish := &domain.Dish{
		Name:         formValue(r, "name"),
		Description:  formValue(r, "description"),
		RestaurantID: session.AccountID,
	}
	if err := h.Dishes.Create(r.Context(), dish, session.DisplayName, thumbnail); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	thumbnail, closeThumbnail, err := formImage(r, "thumbnail")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer closeThumbnail()

	session := caller(r)
	dish, err := h.Dishes.UpdateInfo(r.Context(), session.AccountID, mux.Vars(r)["id"],
		formValue(r, "name"), formValue(r, "description"), session.DisplayName, thumbnail)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) setDishAvailable(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	dish, err := h.Dishes.SetAvailable(r.Context(), caller(r).AccountID, mux.Vars(r)["id"], req.Available)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	if err := h.Dishes.Delete(r.Context(), caller(r).AccountID, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// saveDishPrices returns the prices written so far together with the error status when a
// write fails halfway.
func (h *Handler) saveDishPrices(w http.ResponseWriter, r *http.Request) {
	var req pricesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	submitted := make([]domain.SizePrice, 0, len(req.Prices))
	for _, pair := range req.Prices {
		sp, err := service.NewSizePrice(pair.SizeID, pair.Price)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		submitted = append(submitted, sp)
	}

	prices, err := h.Prices.SavePrices(r.Context(), caller(r).AccountID, mux.Vars(r)["id"], submitted)
	if err != nil {
		if len(prices) > 0 {
			h.logError(r, err)
			writeJSON(w, statusFor(err), map[string]interface{}{
				"error":  "prices were only partially saved",
				"prices": prices,
			})
			return
		}
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

func (h *Handler) adminGetDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) adminDeleteDish(w http.ResponseWriter, r *http.Request) {
	if err := h.Dishes.Delete(r.Context(), "", mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminDeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Restaurants.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
