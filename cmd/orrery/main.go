// orrery - Terminal Planet Viewer
// Procedurally shaded planets rendered in your terminal.
//
// Controls:
//
//	Arrows/hjkl - Orbit the camera
//	+/-         - Zoom in/out
//	1-7         - Sun, Mars (with moon), Earth, Jupiter, Saturn, Uranus, Mercury
//	8/9/0       - Stripes, polka dots, disco ball
//	c           - Color cycle
//	Space       - Pause animation
//	x           - Toggle wireframe overlay
//	s           - Save PNG screenshot
//	e           - Save WebP screenshot
//	Esc/q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orrery/pkg/capture"
	"github.com/taigrr/orrery/pkg/config"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/scene"
	"github.com/taigrr/orrery/pkg/shader"
)

var (
	configPath = flag.String("config", "", "JSON settings file; explicit flags override it")
	targetFPS  = flag.Int("fps", 0, "Target FPS (default 30)")
	meshPath   = flag.String("mesh", "", "Model file (.obj or .glb); default is a procedural sphere")

	exportDir   = flag.String("export", "", "Render a turntable to this directory instead of running the viewer")
	exportSize  = flag.String("size", "", "Exported frame size, WxH (default 800x600)")
	frames      = flag.Int("frames", 0, "Turntable frames for one revolution (default 120)")
	supersample = flag.Int("supersample", 0, "Render at N times the export size and downsample (default 2)")
	format      = flag.String("format", "", "Export format: webp or png (default webp)")
	materialArg = flag.String("material", "", "Material for the exported turntable (default sun)")
	workers     = flag.Int("workers", 0, "Export worker count (default: one per CPU)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orrery - Terminal Planet Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orrery [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Arrows/hjkl - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom\n")
		fmt.Fprintf(os.Stderr, "  1-7         - Select planet\n")
		fmt.Fprintf(os.Stderr, "  8/9/0/c     - Test patterns\n")
		fmt.Fprintf(os.Stderr, "  Space       - Pause\n")
		fmt.Fprintf(os.Stderr, "  x           - Wireframe overlay\n")
		fmt.Fprintf(os.Stderr, "  s/e         - PNG / WebP screenshot\n")
		fmt.Fprintf(os.Stderr, "  Esc/q       - Quit\n")
	}
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		FPS:         *targetFPS,
		Mesh:        *meshPath,
		Size:        *exportSize,
		Frames:      *frames,
		Supersample: *supersample,
		Format:      *format,
		Material:    *materialArg,
		Workers:     *workers,
	})

	var err error
	if *exportDir != "" {
		err = runExport(cfg)
	} else {
		err = run(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// orbitAxis smooths one camera control with a harmonica spring: key
// presses add velocity, the spring decays it back toward zero.
type orbitAxis struct {
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newOrbitAxis(fps int) orbitAxis {
	// Damping 1.0 = critically damped, so the orbit never overshoots
	return orbitAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// Step returns the velocity to apply this frame and decays it.
func (a *orbitAxis) Step() float64 {
	v := a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
	return v
}

// materialKeys maps number keys to the selectable materials.
var materialKeys = map[string]shader.Material{
	"1": shader.Sun{},
	"2": shader.Mars,
	"3": shader.Earth{},
	"4": shader.Jupiter,
	"5": shader.Saturn,
	"6": shader.Uranus{},
	"7": shader.Mercury{},
	"8": shader.Stripes{},
	"9": shader.PolkaDots{},
	"0": shader.Disco{},
	"c": shader.ColorCycle{},
}

func materialByName(name string) (shader.Material, error) {
	for _, m := range shader.Catalog() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unknown material %q", name)
}

func run(cfg config.Config) error {
	var mesh *models.Mesh
	if cfg.Mesh != "" {
		var err error
		mesh, err = models.Load(cfg.Mesh)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Each terminal row holds two framebuffer rows via half blocks
	sc := scene.NewScene(width, height*2)
	if mesh != nil {
		sc.SetMesh(mesh)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	yaw := newOrbitAxis(cfg.FPS)
	pitch := newOrbitAxis(cfg.FPS)
	zoom := newOrbitAxis(cfg.FPS)
	const orbitImpulse = 0.015
	const zoomImpulse = 0.04

	// Events are handled on the render goroutine so the scene is never
	// touched concurrently
	handleEvent := func(event uv.Event) {
		switch ev := event.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			sc = sc.Resize(width, height*2)

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
				cancel()
			case ev.MatchString("left"), ev.MatchString("h"):
				yaw.Velocity -= orbitImpulse
			case ev.MatchString("right"), ev.MatchString("l"):
				yaw.Velocity += orbitImpulse
			case ev.MatchString("up"), ev.MatchString("k"):
				pitch.Velocity += orbitImpulse
			case ev.MatchString("down"), ev.MatchString("j"):
				pitch.Velocity -= orbitImpulse
			case ev.MatchString("+", "="):
				zoom.Velocity += zoomImpulse
			case ev.MatchString("-", "_"):
				zoom.Velocity -= zoomImpulse
			case ev.MatchString("space"):
				sc.TogglePause()
			case ev.MatchString("x"):
				sc.ToggleWireframe()
			case ev.MatchString("s"):
				saveScreenshot(sc, "png")
			case ev.MatchString("e"):
				saveScreenshot(sc, "webp")
			default:
				for key, m := range materialKeys {
					if ev.MatchString(key) {
						sc.Select(m)
						break
					}
				}
			}
		}
	}

	events := term.Events()
	targetDuration := time.Second / time.Duration(cfg.FPS)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					break drain
				}
				handleEvent(ev)
			default:
				break drain
			}
		}

		sc.Camera.Orbit(yaw.Step(), pitch.Step())
		sc.Camera.Zoom(zoom.Step())
		sc.Advance()
		if err := sc.Render(); err != nil {
			cleanup()
			return fmt.Errorf("render: %w", err)
		}

		sc.Framebuffer().Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// saveScreenshot writes the current frame into the working directory.
// Failures are ignored; there is no good place to report them while the
// alt screen is active.
func saveScreenshot(sc *scene.Scene, format string) {
	name := fmt.Sprintf("orrery_%s.%s", time.Now().Format("20060102_150405"), format)
	img := sc.Framebuffer().ToImage()
	if format == "webp" {
		_ = capture.WriteWebP(name, img)
	} else {
		_ = capture.WritePNG(name, img)
	}
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad size %q, want WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// runExport renders one full camera revolution headless and writes the
// frames as numbered images.
func runExport(cfg config.Config) error {
	width, height, err := parseSize(cfg.ExportSize)
	if err != nil {
		return err
	}
	material, err := materialByName(cfg.Material)
	if err != nil {
		return err
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}

	var mesh *models.Mesh
	if cfg.Mesh != "" {
		mesh, err = models.Load(cfg.Mesh)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
	}

	total := cfg.Frames
	opts := capture.TurntableOptions{
		Dir:     *exportDir,
		Frames:  total,
		Format:  cfg.Format,
		Width:   width,
		Height:  height,
		Workers: cfg.Workers,
		Progress: func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rrendered %d/%d frames", done, total)
		},
	}

	start := time.Now()
	err = capture.Turntable(opts, func() (capture.RenderFrame, error) {
		sc := scene.NewScene(width*ss, height*ss)
		sc.Select(material)
		if mesh != nil {
			sc.SetMesh(mesh)
		}
		return func(frame int) (*image.RGBA, error) {
			sc.Seek(frame)
			sc.Camera.SetOrbit(2*math.Pi*float64(frame)/float64(total), 0.25)
			if err := sc.Render(); err != nil {
				return nil, err
			}
			return sc.Framebuffer().ToImage(), nil
		}, nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr)
		return err
	}

	fmt.Fprintf(os.Stderr, "\rrendered %d/%d frames in %s\n", total, total, time.Since(start).Round(time.Millisecond))
	return nil
}
