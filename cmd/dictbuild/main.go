// Command dictbuild converts the French learner dictionary sources into the
// JSON documents and index the web frontend loads.
// It is intended to be run offline, as a one-shot batch job.
//
// Flags:
//
//	--phase              comma-separated list of phases to run (default: all)
//	--dry-run            parse and merge without writing any file
//	--config             path to build YAML config file
//	--out-dir            output directory (overrides config)
//	--split-by-category  also write one document per part-of-speech category
//	--all-forms          keep inflected wordlist rows, not only lemmas
//	--version            print version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/frenchdict/internal/adapter/jsonfile"
	"github.com/heartmarshall/frenchdict/internal/app"
	"github.com/heartmarshall/frenchdict/internal/app/builder"
	"github.com/heartmarshall/frenchdict/internal/config"
)

// Compile-time interface assertion.
var _ builder.DocumentStore = (*jsonfile.Store)(nil)

func main() {
	phaseFlag := pflag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := pflag.Bool("dry-run", false, "parse and merge without writing any file")
	configFlag := pflag.String("config", "", "path to build YAML config file")
	outDirFlag := pflag.String("out-dir", "", "output directory (overrides config)")
	splitFlag := pflag.Bool("split-by-category", false, "also write one document per part-of-speech category")
	allFormsFlag := pflag.Bool("all-forms", false, "keep inflected wordlist rows, not only lemmas")
	versionFlag := pflag.Bool("version", false, "print version and exit")
	pflag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	buildCfg, err := builder.LoadConfig(*configFlag)
	if err != nil {
		logger.Error("load build config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		buildCfg.DryRun = true
	}
	if *outDirFlag != "" {
		buildCfg.OutputDir = *outDirFlag
	}
	if *splitFlag {
		buildCfg.SplitByCategory = true
	}
	if *allFormsFlag {
		buildCfg.Wordlist.LemmasOnly = false
	}

	var phases []string
	if *phaseFlag != "" {
		for _, ph := range strings.Split(*phaseFlag, ",") {
			if ph = strings.TrimSpace(ph); ph != "" {
				phases = append(phases, ph)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting dictbuild", slog.String("version", app.BuildVersion()))

	store := jsonfile.New(logger, buildCfg.OutputDir, buildCfg.IndexFile)
	pipeline := builder.NewPipeline(logger, store, *buildCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
