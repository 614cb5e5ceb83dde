package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chefbot/internal/bot"
	"chefbot/internal/catalog"
	"chefbot/internal/config"
	"chefbot/internal/journal"
	"chefbot/internal/monitoring"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envFile    = flag.String("env", ".env", "Path to optional .env file")
)

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "[chefbot] ", log.LstdFlags)

	if err := config.LoadEnv(*envFile); err != nil {
		logger.Printf("Ignoring environment file: %v", err)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Stdin, os.Stdout, logger)
	stop()
	os.Exit(code)
}

// run wires the session together and returns the process exit code
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *log.Logger) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("Unexpected failure: %v", r)
			fmt.Fprintln(out, " An unexpected error occurred. Please restart the program.")
			code = 1
		}
	}()

	restaurants, err := catalog.Default()
	if err != nil {
		logger.Printf("Failed to load catalog: %v", err)
		fmt.Fprintf(out, " An error occurred: %v\nPlease restart the program.\n", err)
		return 1
	}

	j, err := journal.New(journal.Paths{
		Dir:             cfg.LogDir,
		Chat:            cfg.ChatLog,
		Orders:          cfg.OrderLog,
		Recommendations: cfg.RecommendationLog,
	})
	if err != nil {
		logger.Printf("Failed to initialize journal: %v", err)
		fmt.Fprintf(out, " An error occurred: %v\nPlease restart the program.\n", err)
		return 1
	}

	monitor := monitoring.NewMonitor()
	session := bot.New(restaurants, j, monitor, in, out,
		bot.WithLogger(logger),
		bot.WithColor(cfg.Styles.Color),
	)

	runErr := session.Run(ctx)

	if cfg.Metrics.Enabled {
		if summary, err := monitor.Summary(); err != nil {
			logger.Printf("Failed to collect metrics: %v", err)
		} else {
			logger.Printf("Session metrics:\n%s", summary)
		}
	}

	if runErr != nil {
		logger.Printf("Session ended with error: %v", runErr)
		fmt.Fprintf(out, " An error occurred: %v\nPlease restart the program.\n", runErr)
		return 1
	}
	return 0
}
