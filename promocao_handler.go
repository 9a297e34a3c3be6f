package main

import (
	"encoding/json"
	"log"
	"net/http"

	"sorveteria/database"

	"github.com/jmoiron/sqlx"
)

// ListPromocoesHandler returns all promotions, newest first.
func ListPromocoesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promocoes, err := database.ListarPromocoes(db)
		if err != nil {
			log.Printf("Error listing promocoes: %v", err)
			http.Error(w, "Falha ao listar promoções.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(promocoes)
	}
}

// CreatePromocaoHandler registers a promotion. Promotions are
// reference-only: sales may point at one, but no price adjustment
// happens automatically.
func CreatePromocaoHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Descricao          string  `json:"descricao"`
			DescontoPercentual float64 `json:"descontoPercentual"`
			DataInicio         string  `json:"dataInicio"`
			DataFim            string  `json:"dataFim"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Requisição inválida.", http.StatusBadRequest)
			return
		}
		if input.Descricao == "" {
			http.Error(w, "A descrição é obrigatória.", http.StatusBadRequest)
			return
		}
		if input.DescontoPercentual < 0 || input.DescontoPercentual > 100 {
			http.Error(w, "O desconto deve estar entre 0 e 100.", http.StatusBadRequest)
			return
		}

		codigo, err := database.CriarPromocao(db, input.Descricao, input.DescontoPercentual, input.DataInicio, input.DataFim)
		if err != nil {
			log.Printf("Error creating promocao %q: %v", input.Descricao, err)
			http.Error(w, "Falha ao criar a promoção.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int64{"codigo": codigo})
	}
}
