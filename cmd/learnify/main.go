package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"learnify/internal/config"
	"learnify/internal/firebase"
	"learnify/internal/home"
	"learnify/internal/models"
	"learnify/internal/repository"
	"learnify/internal/server"
	"learnify/internal/session"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Config
	if cfg == nil {
		log.Panic("❌ Missing or invalid configuration!")
	}

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Panicf("❌ %v", err)
	}

	repo, err := repository.NewFirebaseRepository(ctx, app, cfg)
	if err != nil {
		log.Panicf("Error creating repository: %v\n", err)
	}
	defer repo.Close()

	storage, err := session.OpenSQLiteStorage(cfg.SessionStorePath)
	if err != nil {
		log.Panicf("Error opening session storage: %v\n", err)
	}
	defer storage.Close()
	log.Printf("✅ Opened session storage at %v", cfg.SessionStorePath)

	keys := session.Keys{Token: cfg.SessionTokenKey, Email: cfg.EmailKey}
	screen := home.New(repo, storage, home.Options{
		Keys: keys,
		OnChange: func(v models.View) {
			glog.V(2).Infof("home: %d courses, refreshing=%v, error=%q\n", len(v.Courses), v.Refreshing, v.Error)
		},
	})
	defer screen.Close()

	log.Println("⏳ Loading home screen...")
	if err := screen.Activate(ctx); err != nil {
		glog.Warningf("initial course fetch failed: %v\n", err)
	} else {
		log.Printf("✅ Loaded %d courses", len(screen.All()))
	}

	deps := &server.Dependencies{
		Screen:   screen,
		Source:   repo,
		Storage:  storage,
		Keys:     keys,
		Verifier: repo,
	}
	if err := server.Start(ctx, cfg, deps); err != nil {
		glog.Errorf("server error: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}
