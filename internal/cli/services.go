package cli

import (
	"io"
	"os"

	"github.com/vvka-141/sqlstage/internal/checksum"
	"github.com/vvka-141/sqlstage/internal/client"
	"github.com/vvka-141/sqlstage/internal/files/filesystem"
	"github.com/vvka-141/sqlstage/internal/files/scanner"
	"github.com/vvka-141/sqlstage/internal/logging"
	"github.com/vvka-141/sqlstage/internal/services"
	"github.com/vvka-141/sqlstage/internal/tui"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

func newCleanService(verbose bool) *services.CleanService {
	fsProvider := filesystem.NewOSFileSystem()
	return services.NewCleanService(
		fsProvider,
		scanner.NewScannerWithFS(fsProvider),
		checksum.New(),
		logging.NewConsoleLogger(verbose),
	)
}

// newLoadService wires the loader. The returned stop function must be called
// once the run ends to flush the progress bar, if one was started.
// Client stdout is forwarded to ours unless the bar owns the terminal.
func newLoadService(verbose, dryRun bool) (*services.LoadService, func()) {
	fsProvider := filesystem.NewOSFileSystem()
	var logger sqlstage.Logger = logging.NewConsoleLogger(verbose)
	showProgress := !verbose && !dryRun && tui.IsInteractive()

	var clientOut io.Writer = os.Stdout
	if showProgress {
		clientOut = nil
	}

	svc := services.NewLoadService(
		fsProvider,
		scanner.NewScannerWithFS(fsProvider),
		client.NewExecRunner(clientOut),
		logger,
	)

	if !showProgress {
		return svc, func() {}
	}

	reporter := &progressReporter{}
	return svc.WithProgress(reporter.report), reporter.stop
}

// progressReporter starts the bar on the first report, when the total is known.
type progressReporter struct {
	bar *tui.LoadProgress
}

func (r *progressReporter) report(done, total int, file string) {
	if r.bar == nil {
		r.bar = tui.NewLoadProgress(total)
	}
	r.bar.Advance(done, total, file)
}

func (r *progressReporter) stop() {
	if r.bar != nil {
		r.bar.Stop()
	}
}
