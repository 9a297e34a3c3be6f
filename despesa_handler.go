package main

import (
	"encoding/json"
	"log"
	"net/http"

	"sorveteria/database"

	"github.com/jmoiron/sqlx"
)

// ListDespesasHandler returns all expenses, most recent first.
func ListDespesasHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		despesas, err := database.ListarDespesas(db)
		if err != nil {
			log.Printf("Error listing despesas: %v", err)
			http.Error(w, "Falha ao listar despesas.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(despesas)
	}
}

// CreateDespesaHandler records an expense dated today.
func CreateDespesaHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Descricao string  `json:"descricao"`
			Valor     float64 `json:"valor"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Requisição inválida.", http.StatusBadRequest)
			return
		}
		if input.Descricao == "" {
			http.Error(w, "A descrição é obrigatória.", http.StatusBadRequest)
			return
		}

		if _, err := database.CriarDespesa(db, input.Descricao, input.Valor); err != nil {
			log.Printf("Error creating despesa %q: %v", input.Descricao, err)
			http.Error(w, "Falha ao registrar a despesa.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Despesa registrada."})
	}
}
