package venda

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"sorveteria/database"
	"sorveteria/model"

	"github.com/jmoiron/sqlx"
)

// CreateVendaHandler records a sale. The sale opens with status aberta
// and the product's stock is decremented in the same transaction.
func CreateVendaHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			CodigoProduto  int64   `json:"codigoProduto"`
			ProdutoNome    string  `json:"produtoNome"`
			Quantidade     int     `json:"quantidade"`
			PrecoUnitario  float64 `json:"precoUnitario"`
			CodigoPromocao *int64  `json:"codigoPromocao"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Requisição inválida.", http.StatusBadRequest)
			return
		}
		if input.Quantidade <= 0 {
			http.Error(w, "A quantidade deve ser positiva.", http.StatusBadRequest)
			return
		}

		codigo, err := database.CriarVenda(db, input.CodigoProduto, input.ProdutoNome,
			input.Quantidade, input.PrecoUnitario, input.CodigoPromocao)
		if errors.Is(err, database.ErrEstoqueInsuficiente) {
			http.Error(w, "Estoque insuficiente.", http.StatusConflict)
			return
		}
		if err != nil {
			log.Printf("Error creating venda for produto %d: %v", input.CodigoProduto, err)
			http.Error(w, "Falha ao registrar a venda.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int64{"codigo": codigo})
	}
}

// FinalizarVendaHandler closes a sale, e.g. /api/vendas/finalizar/7.
func FinalizarVendaHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codigo, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/vendas/finalizar/"), 10, 64)
		if err != nil {
			http.Error(w, "Código de venda inválido.", http.StatusBadRequest)
			return
		}

		ok, err := database.FinalizarVenda(db, codigo)
		if err != nil {
			log.Printf("Error finalizing venda %d: %v", codigo, err)
			http.Error(w, "Falha ao finalizar a venda.", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "Venda não encontrada.", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Venda finalizada."})
	}
}

// ListVendasHandler lists sales most recent first. An optional
// ?status=aberta|finalizada query restricts the result.
func ListVendasHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status != "" && status != model.StatusAberta && status != model.StatusFinalizada {
			http.Error(w, "Status de venda inválido.", http.StatusBadRequest)
			return
		}

		vendas, err := database.ListarVendas(db, status)
		if err != nil {
			log.Printf("Error listing vendas (status %q): %v", status, err)
			http.Error(w, "Falha ao listar vendas.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(vendas)
	}
}
