package response

import (
	"encoding/json"
	"net/http"
)

// ApiError represents error details in an API response
type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error ApiError `json:"error"`
}

type okBody struct {
	OK bool `json:"ok"`
}

// SendJSON writes a JSON response with the given status code
func SendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// SendSuccess sends a 200 response with the given payload
func SendSuccess(w http.ResponseWriter, payload interface{}) {
	SendJSON(w, http.StatusOK, payload)
}

// SendOK sends the {ok:true} acknowledgement
func SendOK(w http.ResponseWriter) {
	SendJSON(w, http.StatusOK, okBody{OK: true})
}

// SendError sends an error response with the given status, code and message
func SendError(w http.ResponseWriter, statusCode int, code, message string) {
	SendJSON(w, statusCode, errorBody{Error: ApiError{Code: code, Message: message}})
}

// SendBadRequest sends a 400 Bad Request response
func SendBadRequest(w http.ResponseWriter, message string) {
	SendError(w, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

// SendUnauthorized sends a 401 Unauthorized response
func SendUnauthorized(w http.ResponseWriter, message string) {
	SendError(w, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

// SendForbidden sends a 403 Forbidden response
func SendForbidden(w http.ResponseWriter, message string) {
	SendError(w, http.StatusForbidden, "FORBIDDEN", message)
}

// SendNotFound sends a 404 Not Found response
func SendNotFound(w http.ResponseWriter, message string) {
	SendError(w, http.StatusNotFound, "NOT_FOUND", message)
}

// SendInternalError sends a 500 Internal Server Error response
func SendInternalError(w http.ResponseWriter, message string) {
	SendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}
