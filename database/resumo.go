package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"sorveteria/model"
)

// CalcularResumo computes the dashboard aggregates. Revenue sums count
// finalized sales only; open sales never appear in any figure. The
// expense total covers all time. A storage fault must never take the
// dashboard down, so any error is logged and an all-zero summary is
// returned instead.
func CalcularResumo(dbtx DBTX) model.ResumoFinanceiro {
	resumo, err := calcularResumo(dbtx, time.Now())
	if err != nil {
		log.Printf("WARN: failed to calculate resumo: %v", err)
		return model.ResumoFinanceiro{}
	}
	return resumo
}

func calcularResumo(dbtx DBTX, agora time.Time) (model.ResumoFinanceiro, error) {
	hoje := agora.Format("2006-01-02")
	semana := inicioSemana(agora).Format("2006-01-02")
	mes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location()).Format("2006-01-02")

	totalVendas, err := somaVendasFinalizadas(dbtx, ``)
	if err != nil {
		return model.ResumoFinanceiro{}, err
	}
	vendasHoje, err := somaVendasFinalizadas(dbtx, `AND data = ?`, hoje)
	if err != nil {
		return model.ResumoFinanceiro{}, err
	}
	vendasSemana, err := somaVendasFinalizadas(dbtx, `AND data >= ?`, semana)
	if err != nil {
		return model.ResumoFinanceiro{}, err
	}
	vendasMes, err := somaVendasFinalizadas(dbtx, `AND data >= ?`, mes)
	if err != nil {
		return model.ResumoFinanceiro{}, err
	}

	var totalDespesas sql.NullFloat64
	if err := dbtx.Get(&totalDespesas, `SELECT SUM(valor) FROM Despesa`); err != nil {
		return model.ResumoFinanceiro{}, fmt.Errorf("failed to sum despesas: %w", err)
	}

	return model.ResumoFinanceiro{
		TotalVendas:   totalVendas,
		TotalDespesas: totalDespesas.Float64,
		Lucro:         totalVendas - totalDespesas.Float64,
		VendasHoje:    vendasHoje,
		VendasSemana:  vendasSemana,
		VendasMes:     vendasMes,
	}, nil
}

func somaVendasFinalizadas(dbtx DBTX, filtro string, args ...interface{}) (float64, error) {
	query := `SELECT SUM(valor_total) FROM Venda WHERE status = 'finalizada' ` + filtro
	var soma sql.NullFloat64
	if err := dbtx.Get(&soma, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum vendas (%s): %w", filtro, err)
	}
	return soma.Float64, nil
}

// inicioSemana returns the most recent Monday, counting Monday itself.
func inicioSemana(agora time.Time) time.Time {
	diasDesdeSegunda := (int(agora.Weekday()) + 6) % 7
	return agora.AddDate(0, 0, -diasDesdeSegunda)
}
