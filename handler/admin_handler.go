package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lqCintern/farm-management-sub001/entity"
)

func (h *ExchangeHandler) ResetBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	pairID, ok := parsePairID(w, r)
	if !ok {
		return
	}

	mutation, err := h.Usecase.ResetBalance(r.Context(), pairID)
	if err != nil {
		log.Printf("failed to reset balance for pair %d: %v", pairID, err)
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, mutation)
}

func (h *ExchangeHandler) RecalculateBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Usecase.RecalculateBalance(r.Context(), req.HouseholdAID, req.HouseholdBID)
	if err != nil {
		log.Printf("failed to recalculate balance for households (%d, %d): %v",
			req.HouseholdAID, req.HouseholdBID, err)
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, result)
}
