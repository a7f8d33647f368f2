package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/siteforge/internal/business"
	"git.home.luguber.info/inful/siteforge/internal/config"
	"git.home.luguber.info/inful/siteforge/internal/daemon"
	"git.home.luguber.info/inful/siteforge/internal/generator"
	"git.home.luguber.info/inful/siteforge/internal/logfields"
	"git.home.luguber.info/inful/siteforge/internal/workspace"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"siteforge.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Record  string `short:"r" help:"Business record file (overrides config)"`
		Output  string `short:"o" help:"Output directory (overrides config)"`
		Variant string `help:"Generate only this variant"`
		Count   int    `help:"Number of variants to generate (0 = all)"`
	} `cmd:"" help:"Generate website bundles from a business record"`

	Export struct {
		Record  string `short:"r" help:"Business record file (overrides config)"`
		Output  string `short:"o" help:"Output directory (overrides config)"`
		Variant string `help:"Variant to export" default:"modern"`
	} `cmd:"" help:"Generate one variant and export it as a single text artifact"`

	Preview struct {
		Record string `short:"r" help:"Business record file (overrides config)"`
		Addr   string `help:"Listen address (overrides config)"`
	} `cmd:"" help:"Start the live preview and editing daemon"`

	Init struct {
		Force bool `help:"Overwrite existing files"`
	} `cmd:"" help:"Write a starter configuration and business record"`
}

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	kctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var err error
	switch kctx.Command() {
	case "generate":
		err = runGenerate()
	case "export":
		err = runExport()
	case "preview":
		err = runPreview()
	case "init":
		err = runInit()
	}
	if err != nil {
		slog.Error("command failed", logfields.Error(err))
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(CLI.Config)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Generate.Record != "" {
		cfg.Record = CLI.Generate.Record
	}
	if CLI.Generate.Output != "" {
		cfg.Output.Dir = CLI.Generate.Output
	}
	if CLI.Generate.Variant != "" {
		cfg.Generate.Variant = CLI.Generate.Variant
	}

	rec, gaps, err := business.Load(cfg.Record)
	if err != nil {
		return err
	}
	for _, gap := range gaps {
		slog.Info("record gap filled with default", "field", gap.Field)
	}

	opts := generator.Options{
		VariantCount: CLI.Generate.Count,
		Locale:       cfg.Generate.Locale,
		Currency:     cfg.Generate.Currency,
	}
	gen := generator.New()

	var templates []generator.Template
	if cfg.Generate.Variant != "" {
		tpl, err := gen.GenerateVariant(rec, cfg.Generate.Variant, opts)
		if err != nil {
			return err
		}
		templates = []generator.Template{tpl}
	} else {
		templates, err = gen.Generate(rec, opts)
		if err != nil {
			return err
		}
	}

	for _, tpl := range templates {
		dir := filepath.Join(cfg.Output.Dir, tpl.Name)
		if err := workspace.WriteBundle(dir, tpl.Files); err != nil {
			return err
		}
		slog.Info("bundle written",
			logfields.Template(tpl.Name),
			logfields.Path(dir),
			logfields.Files(len(tpl.Files)))

		if cfg.Output.SingleArtifact {
			archive := workspace.ExportArchive(tpl.Files)
			path := filepath.Join(cfg.Output.Dir, tpl.Name+".bundle.txt")
			if err := os.WriteFile(path, []byte(archive), 0o644); err != nil {
				return err
			}
			slog.Info("archive written", logfields.Path(path))
		}
	}
	return nil
}

func runExport() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Export.Record != "" {
		cfg.Record = CLI.Export.Record
	}
	if CLI.Export.Output != "" {
		cfg.Output.Dir = CLI.Export.Output
	}

	rec, gaps, err := business.Load(cfg.Record)
	if err != nil {
		return err
	}
	for _, gap := range gaps {
		slog.Info("record gap filled with default", "field", gap.Field)
	}

	tpl, err := generator.New().GenerateVariant(rec, CLI.Export.Variant, generator.Options{
		Locale:   cfg.Generate.Locale,
		Currency: cfg.Generate.Currency,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}
	archive := workspace.ExportArchive(tpl.Files)
	path := filepath.Join(cfg.Output.Dir, tpl.Name+".bundle.txt")
	if err := os.WriteFile(path, []byte(archive), 0o644); err != nil {
		return err
	}
	slog.Info("archive written", logfields.Path(path), logfields.Files(len(tpl.Files)))
	return nil
}

func runPreview() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Preview.Record != "" {
		cfg.Record = CLI.Preview.Record
	}
	if CLI.Preview.Addr != "" {
		cfg.Preview.Addr = CLI.Preview.Addr
	}

	d, err := daemon.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting preview daemon",
		logfields.Path(cfg.Record),
		logfields.Addr(cfg.Preview.Addr))
	return d.Run(ctx)
}

const starterRecord = `businessName: Example Bakery
businessDescription: |
  A neighborhood bakery serving fresh bread and pastries every morning.
businessType: restaurant
contactInfo:
  email: hello@example.test
  phone: "555-0100"
  address: 1 Main Street
needsPrivacyPolicy: true
`

func runInit() error {
	cfg := config.Default()
	recordPath := "business.yaml"
	cfg.Record = recordPath

	for _, target := range []string{CLI.Config, recordPath} {
		if _, err := os.Stat(target); err == nil && !CLI.Init.Force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		}
	}

	if err := config.Save(cfg, CLI.Config); err != nil {
		return err
	}
	if err := os.WriteFile(recordPath, []byte(starterRecord), 0o644); err != nil {
		return err
	}
	slog.Info("starter files written", logfields.File(CLI.Config), logfields.File(recordPath))
	return nil
}
