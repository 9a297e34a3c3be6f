package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDinheiro(t *testing.T) {
	assert.Equal(t, "R$ 15,00", Dinheiro(15))
	assert.Equal(t, "R$ 7,50", Dinheiro(7.5))
	assert.Equal(t, "R$ 1.234,56", Dinheiro(1234.56))
	assert.Equal(t, "R$ 0,00", Dinheiro(0))
}

func TestQuantidade(t *testing.T) {
	assert.Equal(t, "12", Quantidade(12))
	assert.Equal(t, "1.000", Quantidade(1000))
}
