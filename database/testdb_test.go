package database

import (
	"path/filepath"
	"testing"

	"sorveteria/loader"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "sorveteria.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, loader.InitDatabase(db))
	return db
}

func insertVenda(t *testing.T, db *sqlx.DB, valorTotal float64, data, status string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO Venda (codigo_produto, produto_nome, quantidade, preco_unitario,
			valor_total, data, hora, status, codigo_promocao)
		VALUES (1, 'Baunilha', 1, ?, ?, ?, '12:00:00', ?, NULL)`,
		valorTotal, valorTotal, data, status)
	require.NoError(t, err)
}
