package capture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// RenderFrame produces the image for one turntable frame. Implementations
// are not required to be safe for concurrent use; each worker gets its own
// via the renderer factory.
type RenderFrame func(frame int) (*image.RGBA, error)

// TurntableOptions configures a headless turntable export.
type TurntableOptions struct {
	Dir    string // Output directory, created if missing
	Frames int    // Frames for one full revolution (default 120)
	Format string // "webp" (default) or "png"

	// Width/Height are the final frame size. When the renderer produces
	// larger images (supersampling), frames are downsampled to this size
	// before encoding. Zero means write frames as rendered.
	Width  int
	Height int

	Workers int // Defaults to GOMAXPROCS

	// Progress receives rendered/total updates every couple of seconds.
	// Nil disables reporting.
	Progress func(done, total int)
}

// Turntable renders a full revolution to numbered image files using a pool
// of workers. The factory is called once per worker so each one owns an
// independent renderer and framebuffer; frames are distributed over a
// channel and the first render or encode error aborts the run (workers
// drain remaining frames without rendering them).
func Turntable(opts TurntableOptions, newRenderer func() (RenderFrame, error)) error {
	if opts.Frames <= 0 {
		opts.Frames = 120
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Format == "" {
		opts.Format = "webp"
	}
	if opts.Format != "webp" && opts.Format != "png" {
		return fmt.Errorf("unknown format %q", opts.Format)
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var rendered atomic.Int64

	done := make(chan struct{})
	if opts.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					opts.Progress(int(rendered.Load()), opts.Frames)
				}
			}
		}()
	}

	frames := make(chan int, opts.Workers*2)
	errs := make(chan error, opts.Workers)
	var failed atomic.Bool
	var wg sync.WaitGroup

	for range opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			render, err := newRenderer()
			if err != nil {
				if failed.CompareAndSwap(false, true) {
					errs <- fmt.Errorf("create renderer: %w", err)
				}
			}

			for frame := range frames {
				if failed.Load() {
					continue
				}
				if err := renderOne(opts, render, frame); err != nil {
					if failed.CompareAndSwap(false, true) {
						errs <- err
					}
					continue
				}
				rendered.Add(1)
			}
		}()
	}

	for i := range opts.Frames {
		frames <- i
	}
	close(frames)
	wg.Wait()
	close(done)

	select {
	case err := <-errs:
		return err
	default:
	}

	if opts.Progress != nil {
		opts.Progress(int(rendered.Load()), opts.Frames)
	}
	return nil
}

func renderOne(opts TurntableOptions, render RenderFrame, frame int) error {
	img, err := render(frame)
	if err != nil {
		return fmt.Errorf("frame %d: %w", frame, err)
	}

	if opts.Width > 0 && opts.Height > 0 {
		img = Downsample(img, opts.Width, opts.Height)
	}

	path := filepath.Join(opts.Dir, fmt.Sprintf("frame_%04d.%s", frame, opts.Format))
	if opts.Format == "png" {
		err = WritePNG(path, img)
	} else {
		err = WriteWebP(path, img)
	}
	if err != nil {
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	return nil
}
