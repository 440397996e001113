package store

import "github.com/prometheus/client_golang/prometheus"

// Métricas Prometheus dos stores. Registradas no main de cada binário
// que usa o pacote (RegisterMetrics), no estilo dos demais serviços.
var (
	actionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gallo_store_actions_total",
		Help: "Ações de store concluídas, por store e resultado",
	}, []string{"store", "result"})

	staleResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gallo_store_stale_responses_total",
		Help: "Respostas descartadas por last-writer-wins",
	}, []string{"store"})

	betsPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gallo_bets_placed_total",
		Help: "Apostas aceitas de forma otimista",
	})

	betsReconciled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gallo_bets_reconciled_total",
		Help: "Apostas reconciliadas pelo backend, por desfecho",
	}, []string{"status"})
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(actionsTotal, staleResponses, betsPlaced, betsReconciled)
}
