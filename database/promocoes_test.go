package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarEListarPromocoes(t *testing.T) {
	db := newTestDB(t)

	antiga, err := CriarPromocao(db, "Promoção de inverno", 15, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	recente, err := CriarPromocao(db, "Semana do sorvete", 10, "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	promocoes, err := ListarPromocoes(db)
	require.NoError(t, err)
	require.Len(t, promocoes, 2)

	// Newest start date first.
	assert.Equal(t, recente, promocoes[0].Codigo)
	assert.Equal(t, "Semana do sorvete", promocoes[0].Descricao)
	assert.Equal(t, 10.0, promocoes[0].DescontoPercentual)
	assert.Equal(t, "2025-03-10", promocoes[0].DataInicio)
	assert.Equal(t, "2025-03-16", promocoes[0].DataFim)
	assert.Equal(t, antiga, promocoes[1].Codigo)
}

func TestCriarPromocaoRejeitaDescricaoVazia(t *testing.T) {
	db := newTestDB(t)

	_, err := CriarPromocao(db, "", 10, "2025-03-10", "2025-03-16")
	assert.Error(t, err)
}

func TestCriarEListarDespesas(t *testing.T) {
	db := newTestDB(t)

	ok, err := CriarDespesa(db, "Manutenção do freezer", 250.00)
	require.NoError(t, err)
	assert.True(t, ok)

	despesas, err := ListarDespesas(db)
	require.NoError(t, err)
	require.Len(t, despesas, 1)
	assert.Equal(t, "Manutenção do freezer", despesas[0].Descricao)
	assert.Equal(t, 250.00, despesas[0].Valor)
	assert.Equal(t, time.Now().Format("2006-01-02"), despesas[0].Data)
}

func TestCriarDespesaRejeitaDescricaoVazia(t *testing.T) {
	db := newTestDB(t)

	_, err := CriarDespesa(db, "", 10.00)
	assert.Error(t, err)

	despesas, err := ListarDespesas(db)
	require.NoError(t, err)
	assert.Empty(t, despesas)
}

func TestListarDespesasMaisRecentesPrimeiro(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec(`INSERT INTO Despesa (descricao, valor, data) VALUES ('Leite', 5.00, '2025-03-01')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO Despesa (descricao, valor, data) VALUES ('Copos', 8.00, '2025-03-12')`)
	require.NoError(t, err)

	despesas, err := ListarDespesas(db)
	require.NoError(t, err)
	require.Len(t, despesas, 2)
	assert.Equal(t, "Copos", despesas[0].Descricao)
	assert.Equal(t, "Leite", despesas[1].Descricao)
}
