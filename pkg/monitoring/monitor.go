package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// 按评分路径与结果统计的作答数
	GradedAnswers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grading_answers_total",
			Help: "Answers graded, by grading path and outcome",
		},
		[]string{"path", "outcome"},
	)

	DelegateFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "grading_delegate_failures_total",
			Help: "Open-answer grading calls that failed and were scored 0",
		},
	)

	SubmissionScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "submission_score",
			Help:    "Auto-graded submission scores (0-100)",
			Buckets: []float64{20, 40, 60, 70, 85, 100},
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(GradedAnswers)
		prometheus.MustRegister(DelegateFailures)
		prometheus.MustRegister(SubmissionScores)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
