package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarEObterProduto(t *testing.T) {
	db := newTestDB(t)

	codigo, err := CriarProduto(db, "Chocolate", 7.50, 12)
	require.NoError(t, err)
	require.NotZero(t, codigo)

	p, err := ObterProduto(db, codigo)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, codigo, p.Codigo)
	assert.Equal(t, "Chocolate", p.Nome)
	assert.Equal(t, 7.50, p.Preco)
	assert.Equal(t, 12, p.Quantidade)
}

func TestCriarProdutoAtribuiCodigosNovos(t *testing.T) {
	db := newTestDB(t)

	primeiro, err := CriarProduto(db, "Morango", 6.00, 5)
	require.NoError(t, err)
	segundo, err := CriarProduto(db, "Pistache", 9.00, 3)
	require.NoError(t, err)

	assert.NotEqual(t, primeiro, segundo)
}

func TestCriarProdutoRejeitaEntradaInvalida(t *testing.T) {
	db := newTestDB(t)

	_, err := CriarProduto(db, "", 5.00, 10)
	assert.Error(t, err)
	_, err = CriarProduto(db, "Limão", 0, 10)
	assert.Error(t, err)
	_, err = CriarProduto(db, "Limão", -1.00, 10)
	assert.Error(t, err)
	_, err = CriarProduto(db, "Limão", 5.00, -1)
	assert.Error(t, err)

	produtos, err := ListarProdutos(db)
	require.NoError(t, err)
	assert.Empty(t, produtos, "rejected creations must not leave partial rows")
}

func TestObterProdutoInexistente(t *testing.T) {
	db := newTestDB(t)

	p, err := ObterProduto(db, 999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestListarProdutosOrdenaPorNome(t *testing.T) {
	db := newTestDB(t)

	_, err := CriarProduto(db, "Morango", 6.00, 1)
	require.NoError(t, err)
	_, err = CriarProduto(db, "Açaí", 8.00, 2)
	require.NoError(t, err)
	_, err = CriarProduto(db, "Chocolate", 7.00, 3)
	require.NoError(t, err)

	produtos, err := ListarProdutos(db)
	require.NoError(t, err)
	require.Len(t, produtos, 3)

	nomes := []string{produtos[0].Nome, produtos[1].Nome, produtos[2].Nome}
	assert.Equal(t, []string{"Açaí", "Chocolate", "Morango"}, nomes)
}

func TestAtualizarProduto(t *testing.T) {
	db := newTestDB(t)

	codigo, err := CriarProduto(db, "Baunilha", 5.00, 20)
	require.NoError(t, err)

	ok, err := AtualizarProduto(db, codigo, "Baunilha Premium", 6.50, 15)
	require.NoError(t, err)
	assert.True(t, ok)

	p, err := ObterProduto(db, codigo)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Baunilha Premium", p.Nome)
	assert.Equal(t, 6.50, p.Preco)
	assert.Equal(t, 15, p.Quantidade)
}

func TestAtualizarProdutoInexistente(t *testing.T) {
	db := newTestDB(t)

	ok, err := AtualizarProduto(db, 42, "Fantasma", 1.00, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExcluirProduto(t *testing.T) {
	db := newTestDB(t)

	codigo, err := CriarProduto(db, "Coco", 5.50, 8)
	require.NoError(t, err)

	ok, err := ExcluirProduto(db, codigo)
	require.NoError(t, err)
	assert.True(t, ok)

	p, err := ObterProduto(db, codigo)
	require.NoError(t, err)
	assert.Nil(t, p)

	// The Estoque row must be gone too, not orphaned.
	var restantes int
	require.NoError(t, db.Get(&restantes, `SELECT COUNT(*) FROM Estoque WHERE codigo_produto = ?`, codigo))
	assert.Zero(t, restantes)
}

func TestExcluirProdutoComVendasFalha(t *testing.T) {
	db := newTestDB(t)

	codigo, err := CriarProduto(db, "Baunilha", 5.00, 20)
	require.NoError(t, err)
	_, err = CriarVenda(db, codigo, "Baunilha", 2, 5.00, nil)
	require.NoError(t, err)

	ok, err := ExcluirProduto(db, codigo)
	require.NoError(t, err)
	assert.False(t, ok)

	// Product and stock must remain untouched.
	p, err := ObterProduto(db, codigo)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 18, p.Quantidade)
}

func TestExcluirProdutoInexistente(t *testing.T) {
	db := newTestDB(t)

	ok, err := ExcluirProduto(db, 404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAjustarEstoque(t *testing.T) {
	db := newTestDB(t)

	codigo, err := CriarProduto(db, "Manga", 6.00, 10)
	require.NoError(t, err)

	ok, err := AjustarEstoque(db, codigo, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = AjustarEstoque(db, codigo, -3)
	require.NoError(t, err)
	assert.True(t, ok)

	p, err := ObterProduto(db, codigo)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Quantidade)
}

func TestAjustarEstoquePermiteSaldoNegativo(t *testing.T) {
	// Historical behavior of the adjustment screen: no floor at zero.
	db := newTestDB(t)

	codigo, err := CriarProduto(db, "Uva", 4.00, 2)
	require.NoError(t, err)

	ok, err := AjustarEstoque(db, codigo, -5)
	require.NoError(t, err)
	assert.True(t, ok)

	p, err := ObterProduto(db, codigo)
	require.NoError(t, err)
	assert.Equal(t, -3, p.Quantidade)
}

func TestAjustarEstoqueInexistente(t *testing.T) {
	db := newTestDB(t)

	ok, err := AjustarEstoque(db, 123, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVendaNaoRefleteAlteracaoDePreco(t *testing.T) {
	db := newTestDB(t)

	codigo, err := CriarProduto(db, "Baunilha", 5.00, 20)
	require.NoError(t, err)
	codigoVenda, err := CriarVenda(db, codigo, "Baunilha", 2, 5.00, nil)
	require.NoError(t, err)

	ok, err := AtualizarProduto(db, codigo, "Baunilha", 9.00, 18)
	require.NoError(t, err)
	require.True(t, ok)

	vendas, err := ListarVendas(db, "")
	require.NoError(t, err)
	require.Len(t, vendas, 1)
	assert.Equal(t, codigoVenda, vendas[0].Codigo)
	assert.Equal(t, 5.00, vendas[0].PrecoUnitario)
	assert.Equal(t, 10.00, vendas[0].ValorTotal)
}
