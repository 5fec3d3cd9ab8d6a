package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wagersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wagers_placed_total",
		Help: "Apostas registradas no ledger com pagamento confirmado",
	})

	placementFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wager_placement_failures_total",
			Help: "Falhas de colocação de aposta por etapa",
		},
		[]string{"stage"}, // wallet | invoice | payment | ledger
	)

	payoutsPaid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wager_payouts_paid_total",
		Help: "Vencedores pagos com sucesso na resolução",
	})

	payoutsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wager_payouts_failed_total",
		Help: "Pagamentos de prêmio que falharam (não re-tentados)",
	})

	paidNotRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wager_paid_not_recorded_total",
		Help: "Apostas pagas com partida já fechada (casos de reconciliação)",
	})
)

func WagerPlaced()                 { wagersPlaced.Inc() }
func PlacementFailed(stage string) { placementFailures.WithLabelValues(stage).Inc() }
func PayoutPaid()                  { payoutsPaid.Inc() }
func PayoutFailed()                { payoutsFailed.Inc() }
func PaidNotRecorded()             { paidNotRecorded.Inc() }
