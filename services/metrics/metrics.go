package metrics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	wsActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sporthub_ws_active_connections",
		Help: "Currently connected chat sockets.",
	})

	wsEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sporthub_ws_events_total",
		Help: "Socket events processed, by event name.",
	}, []string{"event"})

	chatMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sporthub_chat_messages_total",
		Help: "Chat messages broadcast to event rooms.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sporthub_http_requests_total",
		Help: "HTTP requests served, by method and status.",
	}, []string{"method", "status"})
)

func IncWSActive() { wsActiveConnections.Inc() }

func DecWSActive() { wsActiveConnections.Dec() }

func IncWSEvent(event string) { wsEventsTotal.WithLabelValues(event).Inc() }

func IncChatMessage() { chatMessagesTotal.Inc() }

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RequestCounter counts every HTTP request after it is served.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		httpRequestsTotal.WithLabelValues(
			c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
