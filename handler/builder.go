package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	usecase "github.com/lqCintern/farm-management-sub001/usecase/exchange"
)

type ExchangeHandler struct {
	Usecase usecase.ExchangeUsecase
}

func NewExchangeHandler(uc usecase.ExchangeUsecase) *ExchangeHandler {
	return &ExchangeHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   data,
	})
}

func writeErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "error",
		Message: message,
	})
}

// writeUsecaseError maps the ledger failure taxonomy to HTTP status codes.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrValidation):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrConcurrencyConflict), errors.Is(err, usecase.ErrDirectionAmbiguous):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}
