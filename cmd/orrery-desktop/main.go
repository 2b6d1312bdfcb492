// orrery-desktop - Desktop Planet Viewer
// The same procedural planets as the terminal viewer, in a real window.
//
// Controls:
//
//	Arrows      - Orbit the camera
//	+/- / Wheel - Zoom
//	1-7         - Sun, Mars (with moon), Earth, Jupiter, Saturn, Uranus, Mercury
//	8/9/0/C     - Test patterns
//	Space       - Pause animation
//	X           - Toggle wireframe overlay
//	S           - Save PNG screenshot
//	Esc         - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/orrery/pkg/capture"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/scene"
	"github.com/taigrr/orrery/pkg/shader"
)

const (
	viewWidth  = 800
	viewHeight = 600

	orbitImpulse = 0.004
	zoomImpulse  = 0.01
	wheelZoom    = 0.05
)

// orbitAxis smooths one camera control with a harmonica spring: held keys
// add velocity, the spring decays it back toward zero.
type orbitAxis struct {
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newOrbitAxis(tps int) orbitAxis {
	return orbitAxis{spring: harmonica.NewSpring(harmonica.FPS(tps), 4.0, 1.0)}
}

// Step returns the velocity to apply this tick and decays it.
func (a *orbitAxis) Step() float64 {
	v := a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
	return v
}

var errQuit = errors.New("quit")

var materialKeys = map[ebiten.Key]shader.Material{
	ebiten.KeyDigit1: shader.Sun{},
	ebiten.KeyDigit2: shader.Mars,
	ebiten.KeyDigit3: shader.Earth{},
	ebiten.KeyDigit4: shader.Jupiter,
	ebiten.KeyDigit5: shader.Saturn,
	ebiten.KeyDigit6: shader.Uranus{},
	ebiten.KeyDigit7: shader.Mercury{},
	ebiten.KeyDigit8: shader.Stripes{},
	ebiten.KeyDigit9: shader.PolkaDots{},
	ebiten.KeyDigit0: shader.Disco{},
	ebiten.KeyC:      shader.ColorCycle{},
}

type game struct {
	sc  *scene.Scene
	img *ebiten.Image

	yaw   orbitAxis
	pitch orbitAxis
	zoom  orbitAxis
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	for key, m := range materialKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sc.Select(m)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sc.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sc.ToggleWireframe()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		name := fmt.Sprintf("orrery_%s.png", time.Now().Format("20060102_150405"))
		if err := capture.WritePNG(name, g.sc.Framebuffer().ToImage()); err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.yaw.Velocity -= orbitImpulse
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.yaw.Velocity += orbitImpulse
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.pitch.Velocity += orbitImpulse
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.pitch.Velocity -= orbitImpulse
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		g.zoom.Velocity += zoomImpulse
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		g.zoom.Velocity -= zoomImpulse
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.zoom.Velocity += wheelY * wheelZoom
	}

	g.sc.Camera.Orbit(g.yaw.Step(), g.pitch.Step())
	if dz := g.zoom.Step(); dz != 0 {
		g.sc.Camera.Zoom(dz)
	}

	g.sc.Advance()
	return g.sc.Render()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(viewWidth, viewHeight)
	}
	g.img.WritePixels(g.sc.Framebuffer().ToImage().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth, viewHeight
}

func main() {
	meshPath := flag.String("mesh", "", "Model file (.obj or .glb); default is a procedural sphere")
	flag.Parse()

	sc := scene.NewScene(viewWidth, viewHeight)
	if *meshPath != "" {
		m, err := models.Load(*meshPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load model: %v\n", err)
			os.Exit(1)
		}
		sc.SetMesh(m)
	}

	g := &game{
		sc:    sc,
		yaw:   newOrbitAxis(60),
		pitch: newOrbitAxis(60),
		zoom:  newOrbitAxis(60),
	}

	ebiten.SetWindowTitle("orrery")
	ebiten.SetWindowSize(viewWidth, viewHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
