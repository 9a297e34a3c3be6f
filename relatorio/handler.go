package relatorio

import (
	"encoding/json"
	"net/http"

	"sorveteria/database"
	"sorveteria/model"
	"sorveteria/render"

	"github.com/jmoiron/sqlx"
)

type resumoResponse struct {
	model.ResumoFinanceiro
	Formatado map[string]string `json:"formatado"`
}

// GetResumoHandler returns the financial summary. The store swallows
// its own faults there (an unreadable store yields an all-zero
// summary), so this handler never fails.
func GetResumoHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumo := database.CalcularResumo(db)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resumoResponse{
			ResumoFinanceiro: resumo,
			Formatado: map[string]string{
				"totalVendas":   render.Dinheiro(resumo.TotalVendas),
				"totalDespesas": render.Dinheiro(resumo.TotalDespesas),
				"lucro":         render.Dinheiro(resumo.Lucro),
				"vendasHoje":    render.Dinheiro(resumo.VendasHoje),
				"vendasSemana":  render.Dinheiro(resumo.VendasSemana),
				"vendasMes":     render.Dinheiro(resumo.VendasMes),
			},
		})
	}
}
