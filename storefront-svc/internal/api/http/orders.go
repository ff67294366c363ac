package httpapi

import (
	"net/http"
	"strconv"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/gorilla/mux"
)

type cartItemRequest struct {
	RestaurantID string `json:"restaurantId"`
	PriceID      string `json:"priceId"`
	Amount       int    `json:"amount"`
}

type editItemRequest struct {
	OldAmount int `json:"oldAmount"`
	Amount    int `json:"amount"`
}

type placeOrderRequest struct {
	PickupTime string `json:"pickupTime"`
}

type orderResponse struct {
	*domain.Order
	Total         string   `json:"total"`
	MissingPrices []string `json:"missingPrices,omitempty"`
}

func (h *Handler) withTotal(r *http.Request, order *domain.Order) (orderResponse, error) {
	total, err := h.Orders.Total(r.Context(), order)
	if err != nil {
		return orderResponse{}, err
	}
	return orderResponse{Order: order, Total: total.Total.StringFixed(2), MissingPrices: total.MissingPrices}, nil
}

func (h *Handler) writeOrder(w http.ResponseWriter, r *http.Request, status int, order *domain.Order) {
	resp, err := h.withTotal(r, order)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, status, resp)
}

// ownOrder loads the order from the path and checks that it belongs to the caller.
func (h *Handler) ownOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	order, err := h.Orders.GetUserOrder(r.Context(), mux.Vars(r)["id"], caller(r).AccountID)
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	return order, true
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Orders.GetCart(r.Context(), caller(r).AccountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOrder(w, r, http.StatusOK, cart)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item := domain.LineItem{PriceID: req.PriceID, Amount: req.Amount}
	cart, err := h.Orders.GetOrCreateCart(r.Context(), caller(r).AccountID, req.RestaurantID, item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOrder(w, r, http.StatusOK, cart)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListUserOrders(r.Context(), caller(r).AccountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getUserOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	h.writeOrder(w, r, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	if err := h.Orders.DeleteOrder(r.Context(), order.ID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addLineItem(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	var req cartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := h.Orders.AddLineItem(r.Context(), order.ID, domain.LineItem{PriceID: req.PriceID, Amount: req.Amount})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOrder(w, r, http.StatusOK, updated)
}

func (h *Handler) editLineItem(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	var req editItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	old := domain.LineItem{PriceID: mux.Vars(r)["priceId"], Amount: req.OldAmount}
	updated, err := h.Orders.EditLineItem(r.Context(), order.ID, old, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOrder(w, r, http.StatusOK, updated)
}

func (h *Handler) removeLineItem(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil {
		http.Error(w, "amount query parameter is required", http.StatusBadRequest)
		return
	}
	item := domain.LineItem{PriceID: mux.Vars(r)["priceId"], Amount: amount}
	updated, err := h.Orders.RemoveLineItem(r.Context(), order.ID, item)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOrder(w, r, http.StatusOK, updated)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	var req placeOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	placed, err := h.Orders.PlaceOrder(r.Context(), order.ID, req.PickupTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOrder(w, r, http.StatusOK, placed)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.Orders.CancelOrder(r.Context(), mux.Vars(r)["id"], caller(r).AccountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOrder(w, r, http.StatusOK, cancelled)
}

func (h *Handler) getOrderTotal(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	total, err := h.Orders.Total(r.Context(), order)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, total)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownOrder(w, r)
	if !ok {
		return
	}
	png, err := h.Orders.PickupQRCode(r.Context(), order)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListRestaurantOrders(r.Context(), caller(r).AccountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) acceptOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.AcceptOrder(r.Context(), mux.Vars(r)["id"], caller(r).AccountID)
	h.writeTransition(w, r, order, err)
}

func (h *Handler) declineOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.DeclineOrder(r.Context(), mux.Vars(r)["id"], caller(r).AccountID)
	h.writeTransition(w, r, order, err)
}

func (h *Handler) markPickedUp(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.MarkPickedUp(r.Context(), mux.Vars(r)["id"], caller(r).AccountID)
	h.writeTransition(w, r, order, err)
}

func (h *Handler) writeTransition(w http.ResponseWriter, r *http.Request, order *domain.Order, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
