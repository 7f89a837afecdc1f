package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lqCintern/farm-management-sub001/entity"
)

func (h *ExchangeHandler) FindOrCreatePair(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.FindOrCreatePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.Usecase.FindOrCreatePair(r.Context(), req.HouseholdAID, req.HouseholdBID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, pair)
}

func (h *ExchangeHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	pairID, ok := parsePairID(w, r)
	if !ok {
		return
	}

	balance, err := h.Usecase.GetBalance(r.Context(), pairID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"pair_id": pairID, "hours_balance": balance})
}

func parsePairID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		writeErrorMessage(w, http.StatusBadRequest, "pair id is required")
		return 0, false
	}

	pairID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "pair id must be a valid integer")
		return 0, false
	}
	return pairID, true
}
