package model

import "database/sql"

const (
	StatusAberta     = "aberta"
	StatusFinalizada = "finalizada"
)

// Venda is immutable after creation except for the one-way
// aberta -> finalizada status transition.
type Venda struct {
	Codigo         int64         `db:"codigo" json:"codigo"`
	CodigoProduto  int64         `db:"codigo_produto" json:"codigoProduto"`
	ProdutoNome    string        `db:"produto_nome" json:"produtoNome"`
	Quantidade     int           `db:"quantidade" json:"quantidade"`
	PrecoUnitario  float64       `db:"preco_unitario" json:"precoUnitario"`
	ValorTotal     float64       `db:"valor_total" json:"valorTotal"`
	Data           string        `db:"data" json:"data"`
	Hora           string        `db:"hora" json:"hora"`
	Status         string        `db:"status" json:"status"`
	CodigoPromocao sql.NullInt64 `db:"codigo_promocao" json:"codigoPromocao"`
}

// ResumoFinanceiro holds the dashboard aggregates. Revenue figures
// count finalized sales only; despesas are summed over all time.
type ResumoFinanceiro struct {
	TotalVendas   float64 `json:"totalVendas"`
	TotalDespesas float64 `json:"totalDespesas"`
	Lucro         float64 `json:"lucro"`
	VendasHoje    float64 `json:"vendasHoje"`
	VendasSemana  float64 `json:"vendasSemana"`
	VendasMes     float64 `json:"vendasMes"`
}
