package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinicware/clinic-management/internal/api"
	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/config"
	"github.com/clinicware/clinic-management/internal/registry"
	"github.com/clinicware/clinic-management/internal/reminder"
	"github.com/clinicware/clinic-management/internal/seed"
)

const version = "0.3.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("api-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s", cfg.Env, cfg.HTTPPort)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := registry.New()
	admin := clinic.NewAdministrator("Front", "Desk", "555-0100", "08:00-18:00")

	if err := seed.Populate(reg, admin, seed.Options{
		Doctors:     cfg.SeedDoctors,
		Patients:    cfg.SeedPatients,
		SlotsPerDay: cfg.SeedSlotsPerDay,
		Days:        cfg.SeedDays,
	}); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	sweeper := reminder.NewSweeper(reg, cfg.ReminderWindow)
	cronRunner, err := sweeper.Start(cfg.ReminderSchedule)
	if err != nil {
		log.Fatalf("reminder sweep error: %v", err)
	}
	defer cronRunner.Stop()

	handler := api.NewRouter(api.RouterConfig{
		Admin:    admin,
		Registry: reg,
		Env:      cfg.Env,
		Version:  version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-rootCtx.Done()

	log.Println("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
