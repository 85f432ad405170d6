package tui

import (
	"fmt"
	"sync"

	"github.com/gosuri/uiprogress"
)

// LoadProgress draws a per-file progress bar for a load run on stdout.
type LoadProgress struct {
	progress *uiprogress.Progress
	bar      *uiprogress.Bar
	mu       sync.Mutex
	done     int
	current  string
}

// NewLoadProgress creates a bar for total files.
// The bar starts rendering immediately; call Stop when the run ends.
func NewLoadProgress(total int) *LoadProgress {
	p := &LoadProgress{progress: uiprogress.New()}

	p.bar = p.progress.AddBar(total).AppendCompleted().PrependElapsed()
	p.bar.PrependFunc(func(b *uiprogress.Bar) string {
		p.mu.Lock()
		defer p.mu.Unlock()
		return fmt.Sprintf("Loading %d/%d: ", p.done, total)
	})
	p.bar.AppendFunc(func(b *uiprogress.Bar) string {
		p.mu.Lock()
		defer p.mu.Unlock()
		return " " + p.current
	})

	p.progress.Start()
	return p
}

// Advance records one more file as loaded. Its signature matches services.ProgressFunc.
func (p *LoadProgress) Advance(done, _ int, file string) {
	p.mu.Lock()
	p.done = done
	p.current = file
	p.mu.Unlock()
	p.bar.Incr()
}

// Stop flushes the bar and stops rendering.
func (p *LoadProgress) Stop() {
	p.progress.Stop()
}
