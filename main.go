package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"orderapi/configs"
	"orderapi/routes"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	app := &cli.App{
		Name:   "orderapi",
		Usage:  "customers, catalog items and orders over HTTP",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate the schema and start the HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or upgrade the schema and exit",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load customers and items from a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "path to the seed file",
						Required: true,
					},
				},
				Action: seed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("orderapi failed")
	}
}

func bootstrap() (*configs.Config, *gorm.DB, error) {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	configs.SetupLogger(cfg)

	db, err := configs.ConnectionDB(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return nil, nil, err
	}
	if err := configs.SetupDatabase(db); err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func serve(_ *cli.Context) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.NewRouter(db),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"port": cfg.Port, "driver": cfg.DBDriver}).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "listen")
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("Shutting down server gracefully...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}

	configs.CloseDB(db)
	log.Info("Server exited gracefully.")
	return nil
}

func migrate(_ *cli.Context) error {
	_, _, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info("schema is up to date")
	return nil
}

func seed(c *cli.Context) error {
	f, err := configs.LoadSeedFile(c.String("file"))
	if err != nil {
		return err
	}

	_, db, err := bootstrap()
	if err != nil {
		return err
	}

	_, err = configs.Seed(db, f)
	return err
}
