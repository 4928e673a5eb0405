package commands

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	posts "github.com/goliatone/go-posts"
	"github.com/goliatone/go-posts/internal/logging"
)

type fakeImporter struct {
	calls  []string
	result *posts.BatchResult
	err    error
}

func (f *fakeImporter) ImportDirectory(_ context.Context, dir string) (*posts.BatchResult, error) {
	f.calls = append(f.calls, dir)
	return f.result, f.err
}

func TestImportDirectoryHandlerSuccess(t *testing.T) {
	importer := &fakeImporter{
		result: &posts.BatchResult{RunID: uuid.New()},
	}

	var reported *posts.BatchResult
	handler := NewImportDirectoryHandler(importer, logging.NoOp(), func(r *posts.BatchResult) {
		reported = r
	})

	err := handler.Execute(context.Background(), ImportDirectoryCommand{Directory: "."})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(importer.calls) != 1 || importer.calls[0] != "." {
		t.Fatalf("importer not invoked correctly: %v", importer.calls)
	}
	if reported != importer.result {
		t.Fatalf("report callback did not receive the batch result")
	}
}

func TestImportDirectoryHandlerValidation(t *testing.T) {
	importer := &fakeImporter{}
	handler := NewImportDirectoryHandler(importer, logging.NoOp(), nil)

	err := handler.Execute(context.Background(), ImportDirectoryCommand{Directory: "   "})
	if err == nil {
		t.Fatalf("expected validation error for blank directory")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(importer.calls) != 0 {
		t.Fatalf("importer must not run on invalid command")
	}
}

func TestImportDirectoryHandlerExecutionFailure(t *testing.T) {
	importer := &fakeImporter{err: errors.New("walk failed")}
	handler := NewImportDirectoryHandler(importer, logging.NoOp(), nil)

	err := handler.Execute(context.Background(), ImportDirectoryCommand{Directory: "."})
	if err == nil {
		t.Fatalf("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerCancelledContext(t *testing.T) {
	importer := &fakeImporter{result: &posts.BatchResult{}}
	handler := NewImportDirectoryHandler(importer, logging.NoOp(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, ImportDirectoryCommand{Directory: "."})
	if err == nil {
		t.Fatalf("expected context error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for context error, got %v", err)
	}
	if len(importer.calls) != 0 {
		t.Fatalf("importer must not run once the context is cancelled")
	}
}
