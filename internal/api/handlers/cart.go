package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sara/shopease/internal/api/dto"
	"github.com/sara/shopease/internal/api/middleware"
	"github.com/sara/shopease/internal/cart"
)

type CartHandler struct {
	cart *cart.Service
}

func NewCartHandler(c *cart.Service) *CartHandler {
	return &CartHandler{cart: c}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart.Get(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Cart lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	productID, _ := uuid.Parse(req.ProductID)
	c, err := h.cart.Add(r.Context(), middleware.GetUserID(r.Context()), productID, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Product not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Add to cart failed"})
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errs})
		return
	}

	productID, _ := uuid.Parse(req.ProductID)
	c, err := h.cart.UpdateQuantity(r.Context(), middleware.GetUserID(r.Context()), productID, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Item not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Cart update failed"})
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid product ID"})
		return
	}

	c, err := h.cart.Remove(r.Context(), middleware.GetUserID(r.Context()), productID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Remove failed"})
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart.Clear(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Clear failed"})
		return
	}

	writeJSON(w, http.StatusOK, c)
}
