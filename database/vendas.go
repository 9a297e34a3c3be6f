package database

import (
	"database/sql"
	"fmt"
	"time"

	"sorveteria/model"

	"github.com/jmoiron/sqlx"
)

// CriarVenda checks the current stock, inserts the Venda with status
// aberta, and decrements the Estoque row, all in one transaction. The
// product name and unit price are snapshotted on the sale; later
// product edits never affect recorded sales. Returns
// ErrEstoqueInsuficiente, with nothing written, when the stock row is
// missing or holds fewer units than requested.
func CriarVenda(db *sqlx.DB, codigoProduto int64, produtoNome string, quantidade int, precoUnitario float64, codigoPromocao *int64) (int64, error) {
	if quantidade <= 0 {
		return 0, fmt.Errorf("venda quantity must be positive, got %d", quantidade)
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var disponivel int
	err = tx.Get(&disponivel, `SELECT quantidade FROM Estoque WHERE codigo_produto = ?`, codigoProduto)
	if err == sql.ErrNoRows {
		return 0, ErrEstoqueInsuficiente
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read estoque for produto %d: %w", codigoProduto, err)
	}
	if disponivel < quantidade {
		return 0, ErrEstoqueInsuficiente
	}

	total := float64(quantidade) * precoUnitario
	agora := time.Now()

	var promocao sql.NullInt64
	if codigoPromocao != nil {
		promocao = sql.NullInt64{Int64: *codigoPromocao, Valid: true}
	}

	res, err := tx.Exec(`
		INSERT INTO Venda (
			codigo_produto, produto_nome, quantidade, preco_unitario,
			valor_total, data, hora, status, codigo_promocao
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		codigoProduto, produtoNome, quantidade, precoUnitario,
		total, agora.Format("2006-01-02"), agora.Format("15:04:05"),
		model.StatusAberta, promocao)
	if err != nil {
		return 0, fmt.Errorf("failed to insert Venda: %w", err)
	}

	if _, err := tx.Exec(`UPDATE Estoque SET quantidade = quantidade - ? WHERE codigo_produto = ?`, quantidade, codigoProduto); err != nil {
		return 0, fmt.Errorf("failed to decrement estoque for produto %d: %w", codigoProduto, err)
	}

	codigoVenda, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new Venda code: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit venda creation: %w", err)
	}
	return codigoVenda, nil
}

// FinalizarVenda marks the sale finalizada. Returns false when the
// code does not exist. The prior status is not checked: finalizing an
// already finalized sale is a no-op that reports success.
func FinalizarVenda(db *sqlx.DB, codigoVenda int64) (bool, error) {
	res, err := db.Exec(`UPDATE Venda SET status = ? WHERE codigo = ?`, model.StatusFinalizada, codigoVenda)
	if err != nil {
		return false, fmt.Errorf("failed to finalize venda %d: %w", codigoVenda, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected finalizing venda %d: %w", codigoVenda, err)
	}
	return rows > 0, nil
}

// ListarVendas returns sales most recent first. An empty status means
// no filter. Dates and times are stored as YYYY-MM-DD / HH:MM:SS text,
// so the lexicographic ordering is chronological.
func ListarVendas(dbtx DBTX, status string) ([]model.Venda, error) {
	vendas := []model.Venda{}
	var err error
	if status != "" {
		err = dbtx.Select(&vendas, `SELECT * FROM Venda WHERE status = ? ORDER BY data DESC, hora DESC`, status)
	} else {
		err = dbtx.Select(&vendas, `SELECT * FROM Venda ORDER BY data DESC, hora DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list vendas: %w", err)
	}
	return vendas, nil
}
