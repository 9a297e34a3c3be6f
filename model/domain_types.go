package model

type Produto struct {
	Codigo int64   `db:"codigo" json:"codigo"`
	Nome   string  `db:"nome" json:"nome"`
	Preco  float64 `db:"preco" json:"preco"`
}

// ProdutoEstoque is the Produto row joined with its Estoque quantity.
// Every product has exactly one stock row, so the join never drops rows.
type ProdutoEstoque struct {
	Codigo     int64   `db:"codigo" json:"codigo"`
	Nome       string  `db:"nome" json:"nome"`
	Preco      float64 `db:"preco" json:"preco"`
	Quantidade int     `db:"quantidade" json:"quantidade"`
}

type Promocao struct {
	Codigo             int64   `db:"codigo" json:"codigo"`
	Descricao          string  `db:"descricao" json:"descricao"`
	DescontoPercentual float64 `db:"desconto_percentual" json:"descontoPercentual"`
	DataInicio         string  `db:"data_inicio" json:"dataInicio"`
	DataFim            string  `db:"data_fim" json:"dataFim"`
}

type Despesa struct {
	Codigo    int64   `db:"codigo" json:"codigo"`
	Descricao string  `db:"descricao" json:"descricao"`
	Valor     float64 `db:"valor" json:"valor"`
	Data      string  `db:"data" json:"data"`
}
