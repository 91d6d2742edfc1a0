package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Sriram-PR/doc-reducer/pkg/config"
	"github.com/Sriram-PR/doc-reducer/pkg/models"
	"github.com/Sriram-PR/doc-reducer/pkg/parse"
	"github.com/Sriram-PR/doc-reducer/pkg/tutorial"
	"github.com/Sriram-PR/doc-reducer/pkg/utils"
)

const version = "0.3.1"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "reduce":
		runReduce(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "version":
		fmt.Printf("doc-reducer %s\n", version)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`doc-reducer - Reduce documentation pages into flat section records

Usage:
  doc-reducer <command> [options]

Commands:
  reduce      Reduce HTML pages into JSON section records
  validate    Validate configuration file
  version     Print version

Inputs to reduce are either '<url>=<file.html>' pairs, or a single bare
file combined with -url. Run 'doc-reducer reduce -h' for options.`)
}

// pageInput pairs one HTML file with the canonical URL of the page it holds.
type pageInput struct {
	url  string
	path string
}

func runReduce(args []string) {
	fs := flag.NewFlagSet("reduce", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to YAML config file (optional)")
	baseURL := fs.String("url", "", "Canonical page URL (single bare-file input only)")
	format := fs.String("format", "", "Page format: 'sphinx' or 'notebook' (overrides config)")
	outDir := fs.String("out", "", "Directory for record files (default: stdout for a single input)")
	pretty := fs.Bool("pretty", false, "Indent JSON output")
	logLevelStr := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.Parse(args)

	log := setupLogger(*logLevelStr)

	appCfg := loadAndValidateConfig(*configFile, log)
	if *format != "" {
		appCfg.DefaultFormat = *format
		if _, err := appCfg.Validate(); err != nil {
			log.Fatalf("Config error: %v (%s)", err, utils.CategorizeError(err))
		}
	}
	patterns, err := appCfg.CompiledIgnoredPatterns()
	if err != nil {
		log.Fatalf("Config error: %v (%s)", err, utils.CategorizeError(err))
	}
	if *outDir == "" {
		*outDir = appCfg.OutputDir
	}

	inputs, err := collectInputs(fs.Args(), *baseURL)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(inputs) > 1 && *outDir == "" {
		log.Fatal("-out is required when reducing more than one file")
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			log.Fatalf("Cannot create output directory '%s': %v", *outDir, err)
		}
	}

	opts := tutorial.Options{
		RootSelector:           appCfg.RootSelector,
		IgnoredHeadings:        appCfg.IgnoredHeadings,
		IgnoredHeadingPatterns: patterns,
	}

	var g errgroup.Group
	g.SetLimit(appCfg.NumWorkers)
	for _, in := range inputs {
		in := in
		g.Go(func() error {
			return reduceOne(in, appCfg.DefaultFormat, *outDir, *pretty, opts, log)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Reduction failed: %v (%s)", err, utils.CategorizeError(err))
	}
	log.Infof("Reduced %d page(s)", len(inputs))
}

// reduceOne parses one HTML file, reduces it, and writes its section
// records as JSON to outDir (or stdout when outDir is empty).
func reduceOne(in pageInput, format, outDir string, pretty bool, opts tutorial.Options, log *logrus.Logger) error {
	normalizedURL, _, err := parse.ParseBaseURL(in.url)
	if err != nil {
		return err
	}

	taskLog := log.WithFields(logrus.Fields{"file": in.path, "page_url": normalizedURL})
	opts.Log = taskLog

	file, err := os.Open(in.path)
	if err != nil {
		return utils.WrapErrorf(utils.ErrFilesystem, "opening '%s': %v", in.path, err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return utils.WrapErrorf(utils.ErrParsing, "HTML in '%s': %v", in.path, err)
	}

	var t *tutorial.ReducedTutorial
	switch format {
	case config.FormatNotebook:
		t, err = tutorial.ReduceNotebook(doc, normalizedURL, opts)
	default:
		t, err = tutorial.Reduce(doc, normalizedURL, opts)
	}
	if err != nil {
		return err
	}

	now := time.Now()
	records := make([]models.SectionRecord, 0, len(t.Sections))
	for _, s := range t.Sections {
		records = append(records, models.NewSectionRecord(s, t.URL, t.H1, t.Keywords, now))
	}

	var out io.Writer = os.Stdout
	if outDir != "" {
		name := utils.SanitizeFilename(t.H1)
		if t.H1 == "" {
			name = utils.SanitizeFilename(strings.TrimSuffix(filepath.Base(in.path), filepath.Ext(in.path)))
		}
		outPath := filepath.Join(outDir, name+".json")
		f, err := os.Create(outPath)
		if err != nil {
			return utils.WrapErrorf(utils.ErrFilesystem, "creating '%s': %v", outPath, err)
		}
		defer f.Close()
		out = f
		taskLog = taskLog.WithField("output", outPath)
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records for '%s': %w", in.path, err)
	}

	if srcHash, err := utils.HashFile(in.path); err == nil {
		taskLog = taskLog.WithField("source_sha256", srcHash[:12])
	}
	taskLog.Infof("Wrote %d section record(s)", len(records))
	return nil
}

// collectInputs resolves positional args into URL/file pairs. Args are
// either '<url>=<file>' pairs or, for a single input, a bare file combined
// with the -url flag.
func collectInputs(args []string, baseURL string) ([]pageInput, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no input files given")
	}
	inputs := make([]pageInput, 0, len(args))
	for _, arg := range args {
		if i := strings.Index(arg, "="); i > 0 && strings.Contains(arg[:i], "://") {
			inputs = append(inputs, pageInput{url: arg[:i], path: arg[i+1:]})
			continue
		}
		if baseURL == "" {
			return nil, fmt.Errorf("input '%s' has no URL: use '<url>=<file>' or pass -url", arg)
		}
		if len(args) > 1 {
			return nil, fmt.Errorf("-url is ambiguous with multiple inputs: use '<url>=<file>' pairs")
		}
		inputs = append(inputs, pageInput{url: baseURL, path: arg})
	}
	return inputs, nil
}

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configFile := fs.String("config", "config.yaml", "Path to YAML config file")
	fs.Parse(args)

	log := setupLogger("info")
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Config error: %v (%s)", err, utils.CategorizeError(err))
	}
	warnings, err := cfg.Validate()
	for _, w := range warnings {
		log.Warnf("Config: %s", w)
	}
	if err != nil {
		log.Fatalf("Config invalid: %v", err)
	}
	log.Infof("Config '%s' is valid", *configFile)
}

func setupLogger(logLevelStr string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel)

	level, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'info'. Error: %v", logLevelStr, err)
	} else {
		log.SetLevel(level)
	}
	return log
}

// loadAndValidateConfig loads the config file (when given), validates it,
// and logs warnings. A missing -config falls back to validated defaults.
func loadAndValidateConfig(configFile string, log *logrus.Logger) *config.AppConfig {
	appCfg := &config.AppConfig{}
	if configFile != "" {
		log.Infof("Loading configuration from %s", configFile)
		loaded, err := config.Load(configFile)
		if err != nil {
			log.Fatalf("Config error: %v (%s)", err, utils.CategorizeError(err))
		}
		appCfg = loaded
	}
	warnings, err := appCfg.Validate()
	for _, w := range warnings {
		log.Debugf("Config: %s", w)
	}
	if err != nil {
		log.Fatalf("Config invalid: %v", err)
	}
	return appCfg
}
