package database

import (
	"database/sql"
	"fmt"

	"sorveteria/model"

	"github.com/jmoiron/sqlx"
)

// CriarProduto inserts a Produto and its paired Estoque row in one
// transaction and returns the new code. The pair is created together,
// never separately.
func CriarProduto(db *sqlx.DB, nome string, preco float64, quantidade int) (int64, error) {
	if nome == "" {
		return 0, fmt.Errorf("produto name must not be empty")
	}
	if preco <= 0 {
		return 0, fmt.Errorf("produto price must be positive, got %v", preco)
	}
	if quantidade < 0 {
		return 0, fmt.Errorf("initial stock quantity must not be negative, got %d", quantidade)
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO Produto (nome, preco) VALUES (?, ?)`, nome, preco)
	if err != nil {
		return 0, fmt.Errorf("failed to insert Produto: %w", err)
	}
	codigo, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new Produto code: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO Estoque (codigo_produto, quantidade) VALUES (?, ?)`, codigo, quantidade); err != nil {
		return 0, fmt.Errorf("failed to insert Estoque for produto %d: %w", codigo, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit produto creation: %w", err)
	}
	return codigo, nil
}

// ObterProduto returns the product joined with its stock quantity, or
// (nil, nil) when the code does not exist.
func ObterProduto(dbtx DBTX, codigo int64) (*model.ProdutoEstoque, error) {
	var p model.ProdutoEstoque
	err := dbtx.Get(&p, `
		SELECT p.codigo, p.nome, p.preco, e.quantidade
		FROM Produto p
		JOIN Estoque e ON p.codigo = e.codigo_produto
		WHERE p.codigo = ?`, codigo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get produto %d: %w", codigo, err)
	}
	return &p, nil
}

// ListarProdutos returns the full catalog with stock quantities,
// ordered by name for stable presentation.
func ListarProdutos(dbtx DBTX) ([]model.ProdutoEstoque, error) {
	produtos := []model.ProdutoEstoque{}
	err := dbtx.Select(&produtos, `
		SELECT p.codigo, p.nome, p.preco, e.quantidade
		FROM Produto p
		JOIN Estoque e ON p.codigo = e.codigo_produto
		ORDER BY p.nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list produtos: %w", err)
	}
	return produtos, nil
}

// AtualizarProduto rewrites the Produto row and its Estoque quantity in
// one transaction. Returns false when the product does not exist;
// neither table is touched in that case.
func AtualizarProduto(db *sqlx.DB, codigo int64, nome string, preco float64, quantidade int) (bool, error) {
	tx, err := db.Beginx()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE Produto SET nome = ?, preco = ? WHERE codigo = ?`, nome, preco, codigo)
	if err != nil {
		return false, fmt.Errorf("failed to update Produto %d: %w", codigo, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for Produto %d: %w", codigo, err)
	}
	if rows == 0 {
		return false, nil
	}

	res, err = tx.Exec(`UPDATE Estoque SET quantidade = ? WHERE codigo_produto = ?`, quantidade, codigo)
	if err != nil {
		return false, fmt.Errorf("failed to update Estoque for produto %d: %w", codigo, err)
	}
	rows, err = res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for Estoque %d: %w", codigo, err)
	}
	if rows == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit produto update: %w", err)
	}
	return true, nil
}

// ExcluirProduto deletes the Estoque row then the Produto row. Returns
// false without deleting anything when any Venda references the
// product or when the product does not exist.
func ExcluirProduto(db *sqlx.DB, codigo int64) (bool, error) {
	tx, err := db.Beginx()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var vendas int
	if err := tx.Get(&vendas, `SELECT COUNT(*) FROM Venda WHERE codigo_produto = ?`, codigo); err != nil {
		return false, fmt.Errorf("failed to count vendas for produto %d: %w", codigo, err)
	}
	if vendas > 0 {
		return false, nil
	}

	// Estoque first because of the foreign key on codigo_produto.
	if _, err := tx.Exec(`DELETE FROM Estoque WHERE codigo_produto = ?`, codigo); err != nil {
		return false, fmt.Errorf("failed to delete Estoque for produto %d: %w", codigo, err)
	}

	res, err := tx.Exec(`DELETE FROM Produto WHERE codigo = ?`, codigo)
	if err != nil {
		return false, fmt.Errorf("failed to delete Produto %d: %w", codigo, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected deleting Produto %d: %w", codigo, err)
	}
	if rows == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit produto deletion: %w", err)
	}
	return true, nil
}

// AjustarEstoque applies quantidade += delta directly at the storage
// layer; delta may be negative for removals. Returns false when the
// product has no stock row. The resulting quantity is deliberately not
// floored at zero, matching the historical behavior of the manual
// adjustment screen; only CriarVenda enforces sufficient stock.
func AjustarEstoque(db *sqlx.DB, codigoProduto int64, delta int) (bool, error) {
	res, err := db.Exec(`UPDATE Estoque SET quantidade = quantidade + ? WHERE codigo_produto = ?`, delta, codigoProduto)
	if err != nil {
		return false, fmt.Errorf("failed to adjust estoque for produto %d: %w", codigoProduto, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected adjusting estoque %d: %w", codigoProduto, err)
	}
	return rows > 0, nil
}
