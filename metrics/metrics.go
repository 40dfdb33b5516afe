package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ArticlesCreated prometheus.Counter
	CommentsCreated prometheus.Counter
	TagsCreated     prometheus.Counter

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
)

func init() {
	ArticlesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_articles_created_total",
			Help: "Total number of articles created.",
		},
	)
	CommentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_comments_created_total",
			Help: "Total number of comments created.",
		},
	)
	TagsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_tags_created_total",
			Help: "Total number of tags created, including tags created while saving an article.",
		},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	prometheus.MustRegister(ArticlesCreated, CommentsCreated, TagsCreated, HTTPRequests, HTTPRequestDuration)
}
