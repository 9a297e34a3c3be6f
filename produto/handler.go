package produto

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"sorveteria/database"

	"github.com/jmoiron/sqlx"
)

// ListProdutosHandler returns the catalog with stock quantities.
func ListProdutosHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		produtos, err := database.ListarProdutos(db)
		if err != nil {
			log.Printf("Error listing produtos: %v", err)
			http.Error(w, "Falha ao listar produtos.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(produtos)
	}
}

// CreateProdutoHandler registers a product together with its initial stock.
func CreateProdutoHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Nome       string  `json:"nome"`
			Preco      float64 `json:"preco"`
			Quantidade int     `json:"quantidade"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Requisição inválida.", http.StatusBadRequest)
			return
		}
		if input.Nome == "" || input.Preco <= 0 || input.Quantidade < 0 {
			http.Error(w, "Nome, preço positivo e quantidade não negativa são obrigatórios.", http.StatusBadRequest)
			return
		}

		codigo, err := database.CriarProduto(db, input.Nome, input.Preco, input.Quantidade)
		if err != nil {
			log.Printf("Error creating produto %q: %v", input.Nome, err)
			http.Error(w, "Falha ao criar o produto.", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int64{"codigo": codigo})
	}
}

// GetProdutoHandler returns one product by code, e.g. /api/produtos/3.
func GetProdutoHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codigo, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/produtos/"), 10, 64)
		if err != nil {
			http.Error(w, "Código de produto inválido.", http.StatusBadRequest)
			return
		}

		p, err := database.ObterProduto(db, codigo)
		if err != nil {
			log.Printf("Error getting produto %d: %v", codigo, err)
			http.Error(w, "Falha ao obter o produto.", http.StatusInternalServerError)
			return
		}
		if p == nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

// UpdateProdutoHandler rewrites a product and its stock quantity.
func UpdateProdutoHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Codigo     int64   `json:"codigo"`
			Nome       string  `json:"nome"`
			Preco      float64 `json:"preco"`
			Quantidade int     `json:"quantidade"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Requisição inválida.", http.StatusBadRequest)
			return
		}
		if input.Nome == "" || input.Preco <= 0 || input.Quantidade < 0 {
			http.Error(w, "Nome, preço positivo e quantidade não negativa são obrigatórios.", http.StatusBadRequest)
			return
		}

		ok, err := database.AtualizarProduto(db, input.Codigo, input.Nome, input.Preco, input.Quantidade)
		if err != nil {
			log.Printf("Error updating produto %d: %v", input.Codigo, err)
			http.Error(w, "Falha ao atualizar o produto.", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "Produto não encontrado.", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Produto atualizado."})
	}
}

// DeleteProdutoHandler removes a product, e.g. /api/produtos/delete/3.
// Products with recorded sales cannot be removed.
func DeleteProdutoHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codigo, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/produtos/delete/"), 10, 64)
		if err != nil {
			http.Error(w, "Código de produto inválido.", http.StatusBadRequest)
			return
		}

		ok, err := database.ExcluirProduto(db, codigo)
		if err != nil {
			log.Printf("Error deleting produto %d: %v", codigo, err)
			http.Error(w, "Falha ao excluir o produto.", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "Produto não encontrado ou possui vendas registradas.", http.StatusConflict)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Produto excluído."})
	}
}

// AjustarEstoqueHandler applies a signed delta to a product's stock.
func AjustarEstoqueHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			CodigoProduto int64 `json:"codigoProduto"`
			Delta         int   `json:"delta"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Requisição inválida.", http.StatusBadRequest)
			return
		}

		ok, err := database.AjustarEstoque(db, input.CodigoProduto, input.Delta)
		if err != nil {
			log.Printf("Error adjusting estoque for produto %d: %v", input.CodigoProduto, err)
			http.Error(w, "Falha ao ajustar o estoque.", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "Produto não encontrado.", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Estoque ajustado."})
	}
}
