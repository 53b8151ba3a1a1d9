// Terminal runs a looping snap list in the terminal.
//
//	go run ./example/terminal/
//	go run ./example/terminal/ -items 12 -config list.toml
//
// Drag with the mouse, scroll with the wheel or arrow keys, Home and End to
// jump, Space to toggle looping, q or Escape to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/snaplist"
	"github.com/go-theft-auto/snaplist/backend/terminal"
)

var names = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
	"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
	"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
	"victor", "whiskey", "x-ray", "yankee", "zulu",
}

func main() {
	configPath := flag.String("config", "", "TOML list config")
	items := flag.Int("items", len(names), "number of items")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	if err := run(*configPath, *items, *fps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, items, fps int) error {
	cfg := snaplist.DefaultConfig()
	cfg.Loop = true
	cfg.Movement = snaplist.Unrestricted
	cfg.AutoAttach = true
	cfg.Spacing = snaplist.Vec2{Y: 1}
	if configPath != "" {
		loaded, err := snaplist.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ItemCount = items

	list, err := snaplist.New(
		snaplist.WithConfig(cfg),
		snaplist.WithTemplate(terminal.CellTemplate(24, 3)),
		snaplist.WithRenderFunc(func(index int, view snaplist.SlotView) {
			if cs, ok := view.(*terminal.CellSlot); ok {
				cs.Text = fmt.Sprintf("%2d %s", index, names[index%len(names)])
			}
		}),
	)
	if err != nil {
		return err
	}
	defer list.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	host := terminal.NewScreen(screen)
	host.Add(list)

	return host.Run(context.Background(), fps, func(in *snaplist.InputState) {
		w, h := screen.Size()
		list.SetViewport(snaplist.Rect{X: 2, Y: 1, W: float32(min(w-4, 40)), H: float32(h - 2)})
		if in.KeyPressed(snaplist.KeySpace) {
			list.SetLoop(!list.Loop())
		}
	})
}
