package main

import (
	"net/http"
	"strings"

	"sorveteria/produto"
	"sorveteria/relatorio"
	"sorveteria/venda"

	"github.com/jmoiron/sqlx"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	mux.HandleFunc("/api/produtos", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			produto.ListProdutosHandler(dbConn)(w, r)
		case http.MethodPost:
			produto.CreateProdutoHandler(dbConn)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/produtos/update", produto.UpdateProdutoHandler(dbConn))
	mux.HandleFunc("/api/produtos/delete/", produto.DeleteProdutoHandler(dbConn))
	mux.HandleFunc("/api/produtos/", func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, "/api/produtos/") == "" {
			http.Error(w, "Código de produto obrigatório.", http.StatusBadRequest)
			return
		}
		produto.GetProdutoHandler(dbConn)(w, r)
	})
	mux.HandleFunc("/api/estoque/ajustar", produto.AjustarEstoqueHandler(dbConn))

	mux.HandleFunc("/api/vendas", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			venda.ListVendasHandler(dbConn)(w, r)
		case http.MethodPost:
			venda.CreateVendaHandler(dbConn)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/vendas/finalizar/", venda.FinalizarVendaHandler(dbConn))

	mux.HandleFunc("/api/promocoes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ListPromocoesHandler(dbConn)(w, r)
		case http.MethodPost:
			CreatePromocaoHandler(dbConn)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/despesas", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ListDespesasHandler(dbConn)(w, r)
		case http.MethodPost:
			CreateDespesaHandler(dbConn)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/resumo", relatorio.GetResumoHandler(dbConn))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
