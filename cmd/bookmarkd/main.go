package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bookmarkd/internal/config"
	"bookmarkd/internal/engine"
	"bookmarkd/internal/httpapi"
	"bookmarkd/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookmarkd",
		Short:         "Loopback LLM annotation service for code bookmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	f := root.Flags()
	f.String("config", "", "Path to config file (.toml/.yaml/.json)")
	f.String("model", "", "Model name (default deepseek_7b)")
	f.String("processor", "", "Processor selector, e.g. cpu or npu (default cpu)")
	f.String("variant", "", "Model variant tag (default default)")
	f.Int("port", 0, "Listen port on 127.0.0.1 (default 5000)")
	f.String("models-dir", "", "Directory holding per-model artifact subdirectories")
	f.String("runtime-url", "", "Base URL of the local inference runtime")
	f.String("log-level", "", "Log level: debug|info|warn|error")
	f.Bool("cors", true, "Enable CORS for the desktop client")
	return root
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = config.Merge(cfg, fileCfg)
	}
	cfg = config.Merge(cfg, config.FromEnv())
	cfg = config.Merge(cfg, flagOverlay(cmd))

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().
		Timestamp().Str("service", "bookmarkd").Logger()
	httpapi.SetLogger(logger)

	corsEnabled := true
	if cfg.CORS != nil {
		corsEnabled = *cfg.CORS
	}
	httpapi.SetCORSOptions(corsEnabled, nil, nil, nil)

	loader := func(ctx context.Context) (engine.Engine, error) {
		eng, artifacts, err := engine.Load(ctx, engine.Options{
			Model:      cfg.Model,
			Processor:  cfg.Processor,
			Variant:    cfg.Variant,
			ModelsDir:  cfg.ModelsDir,
			RuntimeURL: cfg.RuntimeURL,
		})
		if err != nil {
			return nil, err
		}
		logger.Info().Str("dir", artifacts.Dir).Int("graphs", len(artifacts.Graphs)).
			Msg("model artifacts resolved")
		return eng, nil
	}

	svc := service.New(cfg.Model, cfg.Processor, loader, logger)
	defer svc.Close()

	// Loopback only: the service is a single-client local facade.
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.Port))
	srv := &http.Server{Addr: addr, Handler: httpapi.NewMux(svc)}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("model", cfg.Model).Msg("bookmarkd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("server error")
		return err
	case <-stop:
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

// flagOverlay converts explicitly set flags into a Config overlay so flags
// win over environment and file values.
func flagOverlay(cmd *cobra.Command) config.Config {
	var over config.Config
	f := cmd.Flags()
	if f.Changed("model") {
		over.Model, _ = f.GetString("model")
	}
	if f.Changed("processor") {
		over.Processor, _ = f.GetString("processor")
	}
	if f.Changed("variant") {
		over.Variant, _ = f.GetString("variant")
	}
	if f.Changed("port") {
		over.Port, _ = f.GetInt("port")
	}
	if f.Changed("models-dir") {
		over.ModelsDir, _ = f.GetString("models-dir")
	}
	if f.Changed("runtime-url") {
		over.RuntimeURL, _ = f.GetString("runtime-url")
	}
	if f.Changed("log-level") {
		over.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("cors") {
		b, _ := f.GetBool("cors")
		over.CORS = &b
	}
	return over
}
