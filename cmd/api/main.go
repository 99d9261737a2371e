package main

import (
	"github.com/acadmentor/advisor/internal/catalog"
	"github.com/acadmentor/advisor/internal/chat"
	"github.com/acadmentor/advisor/internal/config"
	"github.com/acadmentor/advisor/internal/httpapi"
	"github.com/acadmentor/advisor/internal/logger"
	"github.com/acadmentor/advisor/internal/skills"
)

func main() {
	cfg := config.LoadAPI()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cat, err := catalog.LoadCatalogFile(cfg.CatalogPath)
	if err != nil {
		log.Fatal("error loading catalog", "err", err)
	}
	careers, err := catalog.LoadCareerDataFile(cfg.CareerDataPath)
	if err != nil {
		log.Fatal("error loading career data", "err", err)
	}

	analyzer := skills.NewAnalyzer()
	advisor := chat.NewAdvisor(cat, careers, analyzer, log)
	handler := httpapi.NewAdvisingHandler(log, cat, careers, analyzer, advisor)

	router := httpapi.NewRouter(httpapi.RouterConfig{AdvisingHandler: handler})

	log.Info("starting advising api", "addr", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
