package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON serializa payload como JSON com o status informado.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondErro responde um corpo de erro JSON no formato {"error": mensagem}.
func RespondErro(w http.ResponseWriter, status int, mensagem string) {
	RespondJSON(w, status, map[string]string{"error": mensagem})
}
