package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/salesdesk/qbo-bridge/internal/api"
	"github.com/salesdesk/qbo-bridge/internal/clients/quickbooks"
	"github.com/salesdesk/qbo-bridge/internal/credentials"
	"github.com/salesdesk/qbo-bridge/internal/service"
	"github.com/salesdesk/qbo-bridge/pkg/config"
	"github.com/salesdesk/qbo-bridge/pkg/logger"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	store := credentials.NewMemory()
	qbo := quickbooks.NewClient(cfg.QuickBooks)

	s := service.New(store, qbo, cfg.QuickBooks.RealmID)

	handler := api.NewHandler(s)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "environment", cfg.QuickBooks.Environment)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
