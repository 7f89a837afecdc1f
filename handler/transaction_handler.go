package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/entity"
)

func (h *ExchangeHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateAddTransactionRequest(req); err != nil {
		log.Println("Invalid input:", err)
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	mutation, err := h.Usecase.AddTransaction(r.Context(), req.PairID, req.Hours, req.Description, req.AssignmentID)
	if err != nil {
		log.Printf("failed to add transaction for pair %d: %v", req.PairID, err)
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, mutation)
}

func (h *ExchangeHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	pairID, ok := parsePairID(w, r)
	if !ok {
		return
	}

	page := parseQueryInt(r, "page", consts.DefaultPage)
	perPage := parseQueryInt(r, "per_page", consts.DefaultPerPage)

	pageResult, err := h.Usecase.ListTransactions(r.Context(), pairID, page, perPage)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, pageResult)
}

func validateAddTransactionRequest(req entity.AddTransactionRequest) error {
	if req.PairID <= 0 {
		return errors.New("pair_id is required")
	}
	if req.AssignmentID != nil && *req.AssignmentID <= 0 {
		return errors.New("assignment_id must be positive when set")
	}
	return nil
}

func parseQueryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
