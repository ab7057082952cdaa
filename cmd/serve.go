package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reitmaier/banjara-api/internal/config"
	"github.com/reitmaier/banjara-api/internal/repository/audio"
	"github.com/reitmaier/banjara-api/internal/repository/photo"
	"github.com/reitmaier/banjara-api/internal/repository/query"
	"github.com/reitmaier/banjara-api/internal/repository/result"
	"github.com/reitmaier/banjara-api/internal/repository/translationaudio"
	"github.com/reitmaier/banjara-api/internal/server"
	"github.com/reitmaier/banjara-api/internal/service"
	"github.com/reitmaier/banjara-api/internal/service/speech"
	"github.com/reitmaier/banjara-api/internal/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server for photo/audio/query ingestion and annotation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		ctx := context.Background()
		pool, err := config.NewDatabasePool(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer config.CloseDatabasePool(pool)

		// One directory per asset kind under the data root
		photoStore, err := store.New(filepath.Join(cfg.DataDir, "photos"))
		if err != nil {
			return err
		}
		audioStore, err := store.New(filepath.Join(cfg.DataDir, "audio"))
		if err != nil {
			return err
		}
		queryStore, err := store.New(filepath.Join(cfg.DataDir, "queries"))
		if err != nil {
			return err
		}
		commentStore, err := store.New(filepath.Join(cfg.DataDir, "comments"))
		if err != nil {
			return err
		}
		translationStore, err := store.New(filepath.Join(cfg.DataDir, "translations"))
		if err != nil {
			return err
		}

		photoRepo := photo.NewRepository(pool)
		audioRepo := audio.NewRepository(pool)
		queryRepo := query.NewRepository(pool)
		resultRepo := result.NewRepository(pool)
		translationRepo := translationaudio.NewRepository(pool)

		photoService := service.NewPhotoService(photoStore, photoRepo, audioRepo, queryRepo)
		audioService := service.NewAudioService(audioStore, photoRepo, audioRepo)
		queryService := service.NewQueryService(queryStore, commentStore, queryRepo, photoRepo, resultRepo, translationRepo)
		pipelineService := service.NewPipelineService(
			translationStore,
			translationRepo,
			speech.NewWhisperTranscriber(),
			speech.NewArgosTranslator(),
			logger,
		)

		handler := server.NewHandler(photoService, audioService, queryService, pipelineService, logger)
		srv := server.NewServer(cfg.Addr(), server.NewRouter(handler), logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			logger.Info("received signal", "signal", sig.String())
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		// Transcription pipelines outlive their requests; let them finish
		pipelineService.Wait()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
