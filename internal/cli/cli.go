package cli

import (
	batch "auction-etl/internal/batchService"
	"auction-etl/internal/config"
	"auction-etl/internal/etlerrors"
	"auction-etl/internal/server"
	"auction-etl/internal/tables"
	"auction-etl/utils"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

const usage = "Usage: auction-etl <path to json files>\n       ETL_SERVE=true auction-etl\n"

// Run executes the command line and returns the process exit code.
// Arguments are always input paths; the HTTP surface is started through ETL_SERVE instead.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if err := utils.ConfigureLogger(cfg.LogLevel, stderr); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	driver := batch.NewDriver(tables.NewLayout(cfg.OutputDir), stdout)

	if cfg.Serve {
		return serve(cfg, driver, stdout)
	}
	return runBatch(driver, args, stderr)
}

func runBatch(driver *batch.Driver, paths []string, stderr io.Writer) int {
	if _, err := driver.Run(paths); err != nil {
		if errors.Is(err, etlerrors.ErrNoInputFiles) {
			fmt.Fprint(stderr, usage)
			return 1
		}
		utils.Error("extraction failed", map[string]any{"error": err.Error()})
		return 1
	}
	return 0
}

func serve(cfg *config.Config, driver *batch.Driver, stdout io.Writer) int {
	switch cfg.Server.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		utils.Warn("unknown gin mode, using release", map[string]any{"gin_mode": cfg.Server.GinMode})
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.SetupRouter(driver)

	addr := cfg.Server.Address()
	fmt.Fprintf(stdout, "Starting extraction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		utils.Error("failed to start server", map[string]any{"address": addr, "error": err.Error()})
		return 1
	}
	return 0
}
