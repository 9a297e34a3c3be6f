package database

import (
	"fmt"

	"sorveteria/model"

	"github.com/jmoiron/sqlx"
)

// CriarPromocao inserts a promotion and returns its code. Date
// ordering and discount range are the caller's responsibility; only an
// empty description is rejected here.
func CriarPromocao(db *sqlx.DB, descricao string, descontoPercentual float64, dataInicio, dataFim string) (int64, error) {
	if descricao == "" {
		return 0, fmt.Errorf("promocao description must not be empty")
	}

	res, err := db.Exec(`
		INSERT INTO Promocao (descricao, desconto_percentual, data_inicio, data_fim)
		VALUES (?, ?, ?, ?)`,
		descricao, descontoPercentual, dataInicio, dataFim)
	if err != nil {
		return 0, fmt.Errorf("failed to insert Promocao: %w", err)
	}
	codigo, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new Promocao code: %w", err)
	}
	return codigo, nil
}

// ListarPromocoes returns all promotions, newest start date first.
func ListarPromocoes(dbtx DBTX) ([]model.Promocao, error) {
	promocoes := []model.Promocao{}
	err := dbtx.Select(&promocoes, `SELECT * FROM Promocao ORDER BY data_inicio DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list promocoes: %w", err)
	}
	return promocoes, nil
}
