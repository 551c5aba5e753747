package handler

import (
	"net/http"
	"shareit/config"
	"shareit/di"
	"shareit/shared/logger"
	"sync"
)

var (
	once    sync.Once
	handler http.HandlerFunc
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	handler(w, r)
}
