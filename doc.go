/*
Package snaplist provides a virtualized scroll list that recycles a small
pool of slot views, optionally wraps around, and settles onto items with
drag, inertia, elastic bounds and eased snap animations.

# Overview

A List never creates one view per item. It sizes a pool to the number of
items that can be visible at once (plus one partially visible line) and, as
the scroll position changes, re-assigns slots to the items entering the
viewport. The render callback is invoked only for slots whose content
changed.

Items are laid out along a primary axis (vertical or horizontal) with
FixedCount items per line on the cross axis, so the same list can be a
column, a row, or a grid. With Loop set, item indices wrap and the content
repeats without bounds.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	host := snaplist.NewHost(renderer)

	cfg := snaplist.DefaultConfig()
	cfg.ItemCount = 100
	cfg.Loop = true
	cfg.AutoAttach = true

	list, _ := snaplist.New(
	    snaplist.WithConfig(cfg),
	    snaplist.WithTemplate(snaplist.RectTemplate(snaplist.Vec2{X: 280, Y: 60})),
	    snaplist.WithViewport(snaplist.Rect{X: 20, Y: 20, W: 300, H: 500}),
	    snaplist.WithRenderFunc(func(index int, view snaplist.SlotView) {
	        view.(*snaplist.RectSlot).Label = fmt.Sprintf("#%d", index)
	    }),
	)
	host.Add(list)

	// Frame loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    host.Frame(input.Input(), dt)
	    input.EndFrame()
	    window.SwapBuffers()
	}

Hosts that draw on their own call HandleInput and Tick once per frame and
place each active slot at ContentOrigin().Add(slot.Position).

# Coordinates

The scroll position is the distance content has moved toward its end; it is
zero at the start and grows while scrolling forward. Slot positions are item
centers in content space. Screen y grows downward.

# Movement

	Elastic       overshoot with rubber-band resistance, then spring back
	Clamped       stop hard at the bounds
	Unrestricted  no bounds at all

Looping lists ignore bounds regardless of the movement type. With
AutoAttach, inertial motion slower than Snap.VelocityThreshold and any
elastic overshoot settle onto the nearest item over Snap.Duration seconds.

# Input Reference

HandleInput maps polled input onto the list:

	Left drag            Drag the content; release keeps its velocity
	Wheel                One line back or forward
	Up / Left            One line back (vertical / horizontal lists)
	Down / Right         One line forward
	Page Up / Page Down  One window back or forward
	Home / End           First / last item

# Configuration

Config values can be loaded from TOML with LoadConfig or DecodeConfig.
Unknown keys are rejected.

	item_count = 50
	orientation = "vertical"
	fixed_count = 1
	loop = true
	movement = "elastic"
	auto_attach = true

	[snap]
	velocity_threshold = 0.5
	duration = 0.3

# Logging

Lifecycle and animation events are logged through log/slog at debug level.
Call SetVerbose(true) to see them.
*/
package snaplist
