package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/sqlstage/internal/checksum"
	"github.com/vvka-141/sqlstage/internal/files/filesystem"
	"github.com/vvka-141/sqlstage/internal/format"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// CleanService implements the Cleaner interface.
// Thread-Safety: NOT safe for concurrent Clean() calls writing the same output directory.
type CleanService struct {
	fsProvider  filesystem.FileSystemProvider
	fileScanner sqlstage.FileScanner
	calculator  checksum.Calculator
	logger      sqlstage.Logger
}

// NewCleanService creates a new CleanService with all dependencies injected.
// Panics on nil dependencies.
func NewCleanService(
	fsProvider filesystem.FileSystemProvider,
	fileScanner sqlstage.FileScanner,
	calculator checksum.Calculator,
	logger sqlstage.Logger,
) *CleanService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if fileScanner == nil {
		panic("fileScanner cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &CleanService{
		fsProvider:  fsProvider,
		fileScanner: fileScanner,
		calculator:  calculator,
		logger:      logger,
	}
}

// Clean normalizes every file of config.InputDir into config.OutputDir.
// Processing stops at the first file with an unrecognized format; the
// returned result still lists the files written before it.
func (s *CleanService) Clean(ctx context.Context, config sqlstage.CleanConfig) (sqlstage.CleanResult, error) {
	var result sqlstage.CleanResult

	if err := config.Validate(); err != nil {
		return result, fmt.Errorf("invalid configuration: %w", err)
	}

	if !config.DryRun {
		if err := s.fsProvider.MkdirAll(config.OutputDir); err != nil {
			return result, fmt.Errorf("failed to create output directory %s: %w", config.OutputDir, err)
		}
	}

	dumps, err := s.fileScanner.ListFiles(config.InputDir)
	if err != nil {
		return result, err
	}

	s.logger.Verbose("Found %d file(s) in %s", len(dumps), config.InputDir)

	for _, dump := range dumps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		normalized, err := s.cleanFile(dump, config)
		if err != nil {
			var formatErr *sqlstage.FormatError
			if errors.As(err, &formatErr) {
				s.logger.Error("%s: neither of the first two lines is a recognized INSERT statement", dump.Name)
			}
			return result, err
		}

		result.Files = append(result.Files, normalized)
	}

	if config.DryRun {
		s.logger.Info("Dry run: %d file(s) would be written to %s", len(result.Files), config.OutputDir)
	} else {
		s.logger.Info("✓ Cleaned %d file(s) into %s", len(result.Files), config.OutputDir)
	}
	return result, nil
}

// cleanFile reads, resolves, normalizes and writes a single dump file.
func (s *CleanService) cleanFile(dump sqlstage.DumpFile, config sqlstage.CleanConfig) (sqlstage.NormalizedFile, error) {
	content, err := s.fsProvider.ReadFile(dump.Path)
	if err != nil {
		return sqlstage.NormalizedFile{}, fmt.Errorf("failed to read %s: %w", dump.Path, err)
	}

	out, tag, err := format.NormalizeContent(dump.Path, string(content))
	if err != nil {
		return sqlstage.NormalizedFile{}, err
	}

	data := []byte(out)
	target := filepath.Join(config.OutputDir, dump.NormalizedName())
	normalized := sqlstage.NormalizedFile{
		SourcePath: dump.Path,
		Path:       target,
		Format:     tag,
		SizeBytes:  int64(len(data)),
		Checksum:   s.calculator.Calculate(data),
	}

	if config.DryRun {
		s.logger.Verbose("%s (%s) -> %s [dry run]", dump.Name, tag, target)
		return normalized, nil
	}

	if err := s.fsProvider.WriteFile(target, data); err != nil {
		return sqlstage.NormalizedFile{}, fmt.Errorf("failed to write %s: %w", target, err)
	}

	s.logger.Verbose("%s (%s) -> %s [%s]", dump.Name, tag, target, checksum.Short(normalized.Checksum))
	return normalized, nil
}

// Verify CleanService implements the interface at compile time
var _ sqlstage.Cleaner = (*CleanService)(nil)
