package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CartOpsTotal counts cart mutations by operation and outcome.
	CartOpsTotal *prometheus.CounterVec
	// InvoiceRenderTotal counts invoice generation outcomes per request.
	InvoiceRenderTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers the cart and invoice collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CartOpsTotal = registerOrReuse(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_operations_total",
			Help:      "Count of cart operations by outcome.",
		}, []string{"op", "result"}))
		InvoiceRenderTotal = registerOrReuse(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_render_total",
			Help:      "Count of invoice generation outcomes.",
		}, []string{"result"}))
	})
}
