package main

import (
	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const URI_METRICS = "/metrics"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.MapServer.Routes(s.router)
	s.router.Handle("GET", URI_METRICS, promhttp.Handler())
}
