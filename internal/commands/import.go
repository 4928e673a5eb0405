package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	posts "github.com/goliatone/go-posts"
	"github.com/goliatone/go-posts/internal/logging"
	"github.com/goliatone/go-posts/pkg/interfaces"
)

const importDirectoryMessageType = "posts.import_directory"

// DirectoryImporter is the slice of the engine the import command needs.
type DirectoryImporter interface {
	ImportDirectory(ctx context.Context, dir string) (*posts.BatchResult, error)
}

// ImportDirectoryCommand triggers a batch import of every document under
// Directory. Per-document failures are reported on the batch result, not as a
// command error; the caller decides whether they abort publishing.
type ImportDirectoryCommand struct {
	// Directory selects the path (relative to the content root) to import.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("posts.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// NewImportDirectoryHandler builds the handler executing directory imports.
// When report is non-nil it receives the batch result after a successful run.
func NewImportDirectoryHandler(importer DirectoryImporter, logger interfaces.Logger, report func(*posts.BatchResult)) *Handler[ImportDirectoryCommand] {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, cmd ImportDirectoryCommand) error {
		result, err := importer.ImportDirectory(ctx, cmd.Directory)
		if err != nil {
			return err
		}

		logger.Info("posts.import_directory.done",
			"run_id", result.RunID.String(),
			"registered", len(result.Registered),
			"failures", len(result.Failures),
		)

		if report != nil {
			report(result)
		}
		return nil
	}

	return NewHandler(exec, WithLogger[ImportDirectoryCommand](logger))
}
