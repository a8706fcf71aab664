package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/nsyszr/festival/config"
	"github.com/nsyszr/festival/pkg/api"
	"github.com/nsyszr/festival/pkg/client"
	"github.com/nsyszr/festival/pkg/client/natsio"
	"github.com/nsyszr/festival/pkg/schedule"
	"github.com/nsyszr/festival/pkg/storage/memory"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type apiServer struct {
	c    *config.Config
	e    *echo.Echo
	feed client.Interface

	quitCh chan bool
	doneCh chan bool
}

func newAPIServer(c *config.Config) (*apiServer, error) {
	store, err := memory.NewStoreFromFile(c.DataFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", c.DataFile)
	}

	s := &apiServer{
		c:      c,
		quitCh: make(chan bool),
		doneCh: make(chan bool),
	}

	var notifier schedule.Notifier
	if c.NATSServerURL != "" {
		feed, err := natsio.New(natsio.NewConfig(c.NATSServerURL))
		if err != nil {
			return nil, err
		}
		s.feed = feed
		notifier = client.NewNotifier(feed)
	} else {
		log.Info("NATS_URL not set, running without change feed")
	}

	exec, err := api.NewExecutor(schedule.New(store, notifier))
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(logger(log.StandardLogger()))

	api.NewHandler(exec, s.feed, c.GraphiQL).RegisterRoutes(e)
	s.e = e

	return s, nil
}

func (s *apiServer) Serve() {
	go func() {
		log.WithFields(log.Fields{
			"host":      s.c.BindHost,
			"port":      s.c.BindPort,
			"data_file": s.c.DataFile,
		}).Info("Starting server")

		if err := s.e.Start(fmt.Sprintf("%s:%d", s.c.BindHost, s.c.BindPort)); err != nil {
			log.Info("Shutting down the server: ", err)
		}
	}()

	// Wait until receiving the quit signal
	<-s.quitCh
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.e.Shutdown(ctx); err != nil {
		log.Error("Failed to shutdown server: ", err)
	}

	s.doneCh <- true
}

func (s *apiServer) Shutdown() {
	// Send the quit signal to the Serve() routine
	s.quitCh <- true

	select {
	case <-s.doneCh:
		log.Info("Shutdown server successful")
	case <-time.After(shutdownTimeout):
		log.Error("Shutdown server failed")
	}

	if s.feed != nil {
		s.feed.Close()
	}
}

// RunServeAPI returns the command that serves the GraphQL API
func RunServeAPI(c *config.Config) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ConfigureLogging(c.LogLevel)

		s, err := newAPIServer(c)
		if err != nil {
			log.Error("failed to create new server instance: ", err)
			os.Exit(1)
		}

		go s.Serve()

		// Wait for interrupt signal to gracefully shutdown the server
		quitCh := make(chan os.Signal, 1)
		signal.Notify(quitCh, os.Interrupt, syscall.SIGTERM)
		<-quitCh

		s.Shutdown()
	}
}

// ConfigureLogging sets up the standard logger for server processes
func ConfigureLogging(level string) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
