package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	posts "github.com/goliatone/go-posts"
	"github.com/goliatone/go-posts/internal/commands"
	"github.com/goliatone/go-posts/internal/logging/gologger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("posts import: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("posts", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	contentDir := fs.String("content-dir", "", "Root directory holding post documents (overrides config)")
	pattern := fs.String("pattern", "", "Glob pattern applied during discovery (overrides config)")
	directory := fs.String("directory", ".", "Directory to import, relative to the content root")
	strict := fs.Bool("strict", false, "Exit non-zero when any document fails")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := posts.DefaultConfig()
	if *configPath != "" {
		loaded, err := posts.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *contentDir != "" {
		cfg.ContentDir = *contentDir
	}
	if *pattern != "" {
		cfg.Pattern = *pattern
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return err
	}
	logger := provider.GetLogger("posts")

	engine, err := posts.New(cfg, posts.WithLogger(logger))
	if err != nil {
		return err
	}

	var result *posts.BatchResult
	handler := commands.NewImportDirectoryHandler(engine, logger, func(r *posts.BatchResult) {
		result = r
	})

	cmd := commands.ImportDirectoryCommand{Directory: *directory}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return err
	}

	printReport(result)

	if *strict && result != nil && len(result.Failures) > 0 {
		return fmt.Errorf("%d document(s) failed", len(result.Failures))
	}
	return nil
}

func printReport(result *posts.BatchResult) {
	if result == nil {
		return
	}

	fmt.Fprintf(os.Stdout, "run %s: %d registered, %d failed\n",
		result.RunID, len(result.Registered), len(result.Failures))

	for _, post := range result.Registered {
		fmt.Fprintf(os.Stdout, "  + %s  %s\n", post.ID, post.Title)
	}
	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stdout, "  ! %s: %v\n", failure.Ref, failure.Err)
	}
}
