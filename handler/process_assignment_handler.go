package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func (h *ExchangeHandler) ProcessAssignment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	idStr := mux.Vars(r)["id"]
	assignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "assignment id must be a valid integer")
		return
	}

	result, err := h.Usecase.ProcessAssignment(r.Context(), assignmentID)
	if err != nil {
		log.Printf("failed to process assignment %d: %v", assignmentID, err)
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, result)
}
