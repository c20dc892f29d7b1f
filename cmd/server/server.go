package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pointmap/server"
)

type Server struct {
	router    *way.Router
	MapServer *server.MapServer
}

func main() {
	cfg, err := server.LoadConfig(os.Getenv("POINTMAP_CONFIG"))
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(cfg.Level())

	store := server.NewStore(cfg.MapsDir)
	if err := store.Load(); err != nil {
		log.Fatalln(err)
	}
	var watcher *server.Watcher
	if cfg.Watch {
		watcher, err = store.Watch()
		if err != nil {
			log.Fatalln(err)
		}
	}

	Server := Server{
		MapServer: server.NewMapServer(store, cfg.Timeout),
	}
	Server.routes()
	log.Printf("Serving %d maps on port %s", len(store.Names()), cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, Server.router)
	if watcher != nil {
		watcher.Close()
	}
	log.Fatalln(err)
}
