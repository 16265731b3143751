// Package cmd wires the module's cobra-based CLI: a `crawl` subcommand that
// runs one crawler.Crawl session against the index, a `report` subcommand
// that dumps the crawl report, and a `serve` subcommand that starts the
// Console. Commands read an injectable CommanderStreams for output and
// process exit so tests can run them without touching the real process.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frejajensen9/web-based-search-engine-24/config"
	"github.com/frejajensen9/web-based-search-engine-24/console"
	"github.com/frejajensen9/web-based-search-engine-24/crawler"
	"github.com/frejajensen9/web-based-search-engine-24/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/htmlx"
	"github.com/frejajensen9/web-based-search-engine-24/internal/logging"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/token"
	"github.com/frejajensen9/web-based-search-engine-24/report"
)

// CommanderStreams holds the i/o functions a test harness can spoof,
// avoiding a direct dependency on os.Exit in command bodies.
type CommanderStreams struct {
	Printf func(format string, args ...interface{})
	Errorf func(format string, args ...interface{})
	Exit   func(status int)
}

// Streams sets the global CommanderStreams, returning the previous value.
func Streams(cstream CommanderStreams) CommanderStreams {
	old := commander.streams
	commander.streams = cstream
	return old
}

var commander struct {
	root    *cobra.Command
	streams CommanderStreams
}

var configPath string
var seedURL string
var maxPages int

func init() {
	commander.root = &cobra.Command{Use: "searchengine"}
	commander.root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config file to load")

	crawlCommand := &cobra.Command{
		Use:   "crawl",
		Short: "crawl one seed URL into the index",
		Run: func(cmd *cobra.Command, args []string) {
			initCommand()
			runCrawl()
		},
	}
	crawlCommand.Flags().StringVarP(&seedURL, "seed", "s", "", "seed URL to crawl (defaults to config.Crawler.Seeds[0])")
	crawlCommand.Flags().IntVarP(&maxPages, "max-pages", "m", 0, "maximum pages to index this session (defaults to config.Crawler.DefaultMaxPages)")
	commander.root.AddCommand(crawlCommand)

	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "start the search console",
		Run: func(cmd *cobra.Command, args []string) {
			initCommand()
			runServe()
		},
	}
	commander.root.AddCommand(serveCommand)

	reportCommand := &cobra.Command{
		Use:   "report",
		Short: "print the crawl report for the indexed documents",
		Run: func(cmd *cobra.Command, args []string) {
			initCommand()
			runReport()
		},
	}
	commander.root.AddCommand(reportCommand)
}

// Execute runs the command specified on the command line.
func Execute() {
	if err := commander.root.Execute(); err != nil {
		fatalf("%v", err)
	}
}

func initCommand() {
	if configPath != "" {
		if err := config.ReadConfigFile(configPath); err != nil {
			fatalf("%v", err)
		}
	}
	if commander.streams.Printf == nil {
		commander.streams.Printf = func(format string, args ...interface{}) { logging.Info(format, args...) }
	}
	if commander.streams.Errorf == nil {
		commander.streams.Errorf = func(format string, args ...interface{}) { logging.Error(format, args...) }
	}
	if commander.streams.Exit == nil {
		commander.streams.Exit = os.Exit
	}
}

func fatalf(format string, args ...interface{}) {
	logging.Error(format, args...)
	exit := commander.streams.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(1)
}

func openStore() *store.Store {
	s, err := store.Open(config.Config.Index.StorePath)
	if err != nil {
		fatalf("failed to open index store %v: %v", config.Config.Index.StorePath, err)
		return nil
	}
	return s
}

func runCrawl() {
	s := openStore()
	if s == nil {
		return
	}
	defer s.Close()

	seed := seedURL
	if seed == "" && len(config.Config.Crawler.Seeds) > 0 {
		seed = config.Config.Crawler.Seeds[0]
	}
	if seed == "" {
		fatalf("no seed URL given: pass --seed or set crawler.seeds in config")
		return
	}

	pages := maxPages
	if pages <= 0 {
		pages = config.Config.Crawler.DefaultMaxPages
	}

	client, err := fetch.NewClient()
	if err != nil {
		fatalf("failed to build fetcher: %v", err)
		return
	}
	var extractor htmlx.Extractor
	stopWords := token.LoadStopWords(config.Config.Index.StopWordFile)

	logging.Info("crawling %s (max %d pages)", seed, pages)
	if err := crawler.Crawl(context.Background(), s, client, extractor, stopWords, seed, pages); err != nil {
		fatalf("crawl failed: %v", err)
		return
	}
	logging.Info("crawl complete")
}

func runReport() {
	s := openStore()
	if s == nil {
		return
	}
	defer s.Close()

	client, err := fetch.NewClient()
	if err != nil {
		fatalf("failed to build fetcher: %v", err)
		return
	}

	if err := report.Write(os.Stdout, s, client); err != nil {
		fatalf("report failed: %v", err)
		return
	}
}

func runServe() {
	s := openStore()
	if s == nil {
		return
	}
	defer s.Close()

	client, err := fetch.NewClient()
	if err != nil {
		fatalf("failed to build fetcher: %v", err)
		return
	}
	stopWords := token.LoadStopWords(config.Config.Index.StopWordFile)

	srv := console.NewServer(s, stopWords, client)

	go func() {
		// In production fatalf's os.Exit tears the process down before this
		// goroutine could do anything unsafe with a half-started server. A
		// faked Exit (tests) just logs and leaves the goroutine running.
		if err := srv.ListenAndServe(); err != nil {
			fatalf("console failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logging.Info("shutting down")
}
