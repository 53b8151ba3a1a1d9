// Command gen builds snap lists in representative states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/snaplist"
	"github.com/go-theft-auto/snaplist/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single list screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	config func(*snaplist.Config) // adjustments to the default config
	item   snaplist.Vec2          // item size
	setup  func(l *snaplist.List) // runs once the list is built
	frames int                    // frames to render after setup (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. The hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	cfg := snaplist.DefaultConfig()
	cfg.ItemCount = 30
	cfg.Spacing = snaplist.Vec2{X: 6, Y: 6}
	cfg.Margin = snaplist.Margin{Left: 8, Right: 8, Top: 8, Bottom: 8}
	if s.config != nil {
		s.config(&cfg)
	}

	// Fresh list per screenshot to avoid state leaking between captures.
	l, err := snaplist.New(
		snaplist.WithConfig(cfg),
		snaplist.WithTemplate(snaplist.RectTemplate(s.item)),
		snaplist.WithViewport(snaplist.Rect{X: 12, Y: 12, W: float32(s.width - 24), H: float32(s.height - 24)}),
		snaplist.WithRenderFunc(func(index int, view snaplist.SlotView) {
			view.(*snaplist.RectSlot).Label = fmt.Sprintf("#%d", index)
		}),
	)
	if err != nil {
		return err
	}
	defer l.Close()

	host := snaplist.NewHost(renderer)
	host.Add(l)

	// First frame builds the window.
	l.Tick(0)
	if s.setup != nil {
		s.setup(l)
	}

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := host.Frame(nil, 1.0/60.0); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// drag pulls the content by d along the primary axis and holds it there.
func drag(d float32) func(*snaplist.List) {
	return func(l *snaplist.List) {
		a := l.Config().Axis()
		start := snaplist.Vec2{X: 100, Y: 100}
		l.BeginDrag(start)
		l.Drag(start.With(a, start.On(a)+d))
	}
}

// buildScreenshots returns the list states to capture.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "vertical", width: 300, height: 400,
			item: snaplist.Vec2{X: 240, Y: 50},
		},
		{
			name:  "vertical_scrolled", width: 300, height: 400,
			item:  snaplist.Vec2{X: 240, Y: 50},
			setup: func(l *snaplist.List) { l.ScrollTo(12, 0) },
		},
		{
			name:  "elastic_overshoot", width: 300, height: 400,
			item:  snaplist.Vec2{X: 240, Y: 50},
			setup: drag(160),
		},
		{
			name: "loop_wrapped", width: 300, height: 400,
			item: snaplist.Vec2{X: 240, Y: 50},
			config: func(c *snaplist.Config) {
				c.ItemCount = 8
				c.Loop = true
			},
			setup: func(l *snaplist.List) { l.ScrollTo(6, 0) },
		},
		{
			name: "scale_by_proximity", width: 300, height: 400,
			item: snaplist.Vec2{X: 240, Y: 50},
			config: func(c *snaplist.Config) {
				c.Loop = true
				c.ScaleByProximity = true
			},
		},
		{
			name: "horizontal", width: 500, height: 140,
			item: snaplist.Vec2{X: 90, Y: 90},
			config: func(c *snaplist.Config) {
				c.Orientation = snaplist.Horizontal
			},
			setup: func(l *snaplist.List) { l.ScrollTo(4, 0) },
		},
		{
			name: "grid", width: 500, height: 350,
			item: snaplist.Vec2{X: 90, Y: 90},
			config: func(c *snaplist.Config) {
				c.Orientation = snaplist.Horizontal
				c.FixedCount = 3
				c.ItemCount = 100
			},
		},
	}
}
