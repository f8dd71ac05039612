package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sarang-church/backend/config"
	"github.com/sarang-church/backend/handlers"
	"github.com/sarang-church/backend/services"
)

var (
	once     sync.Once
	engine   http.Handler
	setupErr error
)

func setup() {
	cfg, err := config.Load()
	if err != nil {
		setupErr = err
		return
	}

	mongo, err := services.NewMongoService(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		setupErr = err
		return
	}

	gin.SetMode(gin.ReleaseMode)
	engine = handlers.NewRouter(cfg, services.NewNewsService(mongo, cfg.NewsCollection))
}

// Handler is the serverless catch-all entry point. The router and the
// Mongo client are built once per cold start and reused across
// invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if setupErr != nil {
		logrus.WithError(setupErr).Error("startup failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok":false,"error":"server misconfigured"}`))
		return
	}
	engine.ServeHTTP(w, r)
}
