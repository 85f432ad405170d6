package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vvka-141/sqlstage/internal/command"
	"github.com/vvka-141/sqlstage/internal/files/filesystem"
	"github.com/vvka-141/sqlstage/internal/planner"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// ProgressFunc is called after each file the client applied successfully.
type ProgressFunc func(done, total int, file string)

// LoadService implements the Loader interface.
// Thread-Safety: NOT safe for concurrent Load() calls on the same instance.
type LoadService struct {
	fsProvider  filesystem.FileSystemProvider
	fileScanner sqlstage.FileScanner
	runner      sqlstage.ClientRunner
	logger      sqlstage.Logger
	onProgress  ProgressFunc
	newRunID    func() uuid.UUID
}

// NewLoadService creates a new LoadService with all dependencies injected.
// Panics on nil dependencies.
func NewLoadService(
	fsProvider filesystem.FileSystemProvider,
	fileScanner sqlstage.FileScanner,
	runner sqlstage.ClientRunner,
	logger sqlstage.Logger,
) *LoadService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if fileScanner == nil {
		panic("fileScanner cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &LoadService{
		fsProvider:  fsProvider,
		fileScanner: fileScanner,
		runner:      runner,
		logger:      logger,
		newRunID:    uuid.New,
	}
}

// WithProgress returns a new LoadService with the specified progress callback.
// The receiver is not modified.
func (s *LoadService) WithProgress(callback ProgressFunc) *LoadService {
	clone := *s
	clone.onProgress = callback
	return &clone
}

// Load plans the run, then invokes the client once per file in order.
// The first non-zero exit status ends the run with an *sqlstage.ExecutionError;
// files loaded before it stay applied.
func (s *LoadService) Load(ctx context.Context, config sqlstage.LoadConfig) (sqlstage.LoadResult, error) {
	result := sqlstage.LoadResult{RunID: s.newRunID()}

	if err := config.Validate(); err != nil {
		return result, fmt.Errorf("invalid configuration: %w", err)
	}

	cmd, err := command.Build(config.Connection)
	if err != nil {
		return result, err
	}
	result.Command = cmd.Redacted()

	files, err := s.fileScanner.ListFiles(config.Dir)
	if err != nil {
		return result, err
	}

	order, err := planner.Plan(config.Order, len(files))
	if err != nil {
		return result, fmt.Errorf("cannot use order %q for %d file(s): %w", config.Order, len(files), err)
	}

	s.logger.Verbose("Load run %s", result.RunID)
	s.logger.Verbose("Command: %s", result.Command)
	for i, f := range files {
		s.logger.Verbose("%d. %s", i+1, f.Name)
	}

	planned := make([]sqlstage.DumpFile, len(order))
	for i, idx := range order {
		planned[i] = files[idx]
		result.Planned = append(result.Planned, files[idx].Name)
	}

	if len(planned) == 0 {
		s.logger.Info("No files to load in %s", config.Dir)
		return result, nil
	}

	if config.DryRun {
		for i, f := range planned {
			s.logger.Info("[%d/%d] %s < %s", i+1, len(planned), result.Command, f.Path)
		}
		s.logger.Info("Dry run: %d file(s) planned, nothing executed", len(planned))
		return result, nil
	}

	for i, f := range planned {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		s.logger.Verbose("[%d/%d] Loading %s", i+1, len(planned), f.Name)
		if err := s.loadFile(ctx, cmd, f); err != nil {
			return result, err
		}

		result.Loaded = append(result.Loaded, f.Name)
		if s.onProgress != nil {
			s.onProgress(i+1, len(planned), f.Name)
		}
	}

	s.logger.Info("✓ Loaded %d file(s) into %s", len(result.Loaded), config.Connection.Database)
	return result, nil
}

// loadFile streams one file into the client. The file is closed before returning.
func (s *LoadService) loadFile(ctx context.Context, cmd sqlstage.Command, f sqlstage.DumpFile) error {
	in, err := s.fsProvider.OpenFile(f.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	defer in.Close()

	run, err := s.runner.Run(ctx, cmd, in)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("load of %s interrupted: %w", f.Name, ctxErr)
		}
		return fmt.Errorf("failed to load %s: %w: %w", f.Name, sqlstage.ErrExecutionFailed, err)
	}

	if run.ExitCode != 0 {
		return &sqlstage.ExecutionError{
			File:     f.Name,
			ExitCode: run.ExitCode,
			Stderr:   run.Stderr,
		}
	}

	return nil
}

// Verify LoadService implements the interface at compile time
var _ sqlstage.Loader = (*LoadService)(nil)
