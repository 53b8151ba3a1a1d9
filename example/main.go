// Example opens a window with two snap lists: a looping vertical list on
// the left and a three-column horizontal grid on the right.
//
//	go run ./example/                    # built-in layout
//	go run ./example/ -config list.toml  # vertical list from a config file
//	go run ./example/ -v                 # debug logging
//
// Drag with the left button, use the wheel or arrow keys to step, Home and
// End to jump, Space to toggle looping and Escape to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/snaplist"
	"github.com/go-theft-auto/snaplist/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "snaplist example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config for the vertical list")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	snaplist.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewInputAdapter(window)

	vertical, err := newVerticalList(configPath)
	if err != nil {
		return err
	}
	grid, err := newGrid()
	if err != nil {
		return err
	}
	defer vertical.Close()
	defer grid.Close()

	host := snaplist.NewHost(renderer)
	host.Add(vertical)
	host.Add(grid)

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		in := input.Input()

		if in.KeyPressed(snaplist.KeyEscape) {
			window.SetShouldClose(true)
		}
		if in.KeyPressed(snaplist.KeySpace) {
			vertical.SetLoop(!vertical.Loop())
		}

		w, h := window.GetFramebufferSize()
		host.Resize(w, h)
		layoutLists(vertical, grid, float32(w), float32(h))

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if err := host.Frame(in, dt); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		input.EndFrame()

		window.SwapBuffers()
	}

	return nil
}

func newVerticalList(configPath string) (*snaplist.List, error) {
	cfg := snaplist.DefaultConfig()
	cfg.ItemCount = 50
	cfg.Spacing = snaplist.Vec2{Y: 6}
	cfg.Margin = snaplist.Margin{Left: 10, Right: 10, Top: 10, Bottom: 10}
	cfg.Loop = true
	cfg.Movement = snaplist.Unrestricted
	cfg.AutoAttach = true
	cfg.ScaleByProximity = true

	if configPath != "" {
		loaded, err := snaplist.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	l, err := snaplist.New(
		snaplist.WithConfig(cfg),
		snaplist.WithTemplate(snaplist.RectTemplate(snaplist.Vec2{X: 280, Y: 60})),
		snaplist.WithRenderFunc(func(index int, view snaplist.SlotView) {
			if rs, ok := view.(*snaplist.RectSlot); ok {
				rs.Label = fmt.Sprintf("#%d", index)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("vertical list: %w", err)
	}
	return l, nil
}

func newGrid() (*snaplist.List, error) {
	cfg := snaplist.DefaultConfig()
	cfg.ItemCount = 200
	cfg.Orientation = snaplist.Horizontal
	cfg.FixedCount = 3
	cfg.Spacing = snaplist.Vec2{X: 8, Y: 8}
	cfg.Margin = snaplist.Margin{Left: 8, Right: 8, Top: 8, Bottom: 8}

	l, err := snaplist.New(
		snaplist.WithConfig(cfg),
		snaplist.WithTemplate(snaplist.RectTemplate(snaplist.Vec2{X: 90, Y: 90})),
	)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	return l, nil
}

// layoutLists splits the window between the two lists.
func layoutLists(vertical, grid *snaplist.List, w, h float32) {
	const pad = 20
	left := snaplist.Rect{X: pad, Y: pad, W: 300, H: h - 2*pad}
	right := snaplist.Rect{X: left.X + left.W + pad, Y: pad, W: w - left.W - 3*pad, H: 3*90 + 2*8 + 16}
	vertical.SetViewport(left)
	grid.SetViewport(right)
}
