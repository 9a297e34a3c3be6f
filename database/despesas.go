package database

import (
	"fmt"
	"time"

	"sorveteria/model"

	"github.com/jmoiron/sqlx"
)

// CriarDespesa records an expense stamped with today's date. Expenses
// are append-only; there is no update or delete.
func CriarDespesa(db *sqlx.DB, descricao string, valor float64) (bool, error) {
	if descricao == "" {
		return false, fmt.Errorf("despesa description must not be empty")
	}

	_, err := db.Exec(`INSERT INTO Despesa (descricao, valor, data) VALUES (?, ?, ?)`,
		descricao, valor, time.Now().Format("2006-01-02"))
	if err != nil {
		return false, fmt.Errorf("failed to insert Despesa: %w", err)
	}
	return true, nil
}

// ListarDespesas returns all expenses, most recent first.
func ListarDespesas(dbtx DBTX) ([]model.Despesa, error) {
	despesas := []model.Despesa{}
	err := dbtx.Select(&despesas, `SELECT * FROM Despesa ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list despesas: %w", err)
	}
	return despesas, nil
}
