package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// mapsLoaded counts store updates by result (ok, broken)
	mapsLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pointmap_maps_loaded_total",
		Help: "Map texts put into the store by parse result",
	}, []string{"result"})

	// mapsParsed counts POST /maps/parse requests by result
	mapsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pointmap_maps_parsed_total",
		Help: "Maps parsed on request by result",
	}, []string{"result"})

	// walkMoves counts walk moves by direction and result
	walkMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pointmap_walk_moves_total",
		Help: "Walk session moves by direction and result",
	}, []string{"direction", "result"})

	walkSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pointmap_walk_sessions_active",
		Help: "Walk sessions currently connected",
	})
)
