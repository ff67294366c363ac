package httpapi

import (
	"net/http"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"
)

type userSignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type alexaRequest struct {
	Token string `json:"token"`
}

func (h *Handler) signUpUser(w http.ResponseWriter, r *http.Request) {
	var req userSignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.Accounts.SignUpUser(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) signUpRestaurant(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}
	logo, closeLogo, err := formImage(r, "logo")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer closeLogo()

	signup := service.RestaurantSignup{
		Name:          formValue(r, "name"),
		CompanyNumber: formValue(r, "companyNumber"),
		Email:         formValue(r, "email"),
		Password:      r.FormValue("password"),
		Address:       formValue(r, "address"),
		PostalCode:    formValue(r, "postalCode"),
		City:          formValue(r, "city"),
	}
	rest, err := h.Accounts.SignUpRestaurant(r.Context(), signup, logo)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	token, session, err := h.Accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"session": session,
	})
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	token, _ := extractBearerToken(r)
	if err := h.Accounts.SignOut(r.Context(), token); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, caller(r))
}

func (h *Handler) linkAlexa(w http.ResponseWriter, r *http.Request) {
	var req alexaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.Accounts.LinkAlexa(r.Context(), caller(r).AccountID, req.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) unlinkAlexa(w http.ResponseWriter, r *http.Request) {
	user, err := h.Accounts.UnlinkAlexa(r.Context(), caller(r).AccountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
