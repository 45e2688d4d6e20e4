// Example renders a 10,000 row virtualized table in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// An optional vtable.yaml in the working directory tunes sizing, theme and
// scrollbars. The window is the table's parent, so resizing the window
// resizes the table.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vtable"
	"github.com/go-theft-auto/vtable/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "vtable example"
	rowCount     = 10000
	margin       = 16
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type vehicle struct {
	id    int
	model string
	owner string
	speed int
	price int
}

func (v *vehicle) RowID() string { return strconv.Itoa(v.id) }

func (v *vehicle) CellValue(key string) any {
	switch key {
	case "id":
		return v.id
	case "model":
		return v.model
	case "owner":
		return v.owner
	case "speed":
		return v.speed
	case "price":
		return v.price
	}
	return nil
}

var (
	models = []string{"Banshee", "Infernus", "Cheetah", "Sabre Turbo", "Stallion", "Comet", "Phoenix", "Voodoo"}
	owners = []string{"Tommy", "Lance", "Ken", "Sonny", "Mercedes", "Avery", "Kent Paul"}
)

func makeRows(n int) []vtable.Row {
	rows := make([]vtable.Row, n)
	for i := range rows {
		rows[i] = &vehicle{
			id:    i + 1,
			model: models[i%len(models)],
			owner: owners[(i*7)%len(owners)],
			speed: 120 + (i*37)%140,
			price: 10000 + (i*7919)%240000,
		}
	}
	return rows
}

func run() error {
	cfg, err := vtable.LoadConfig("vtable.yaml")
	if err != nil {
		return err
	}

	// Initialize GLFW.
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

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	atlas, err := vtable.DefaultAtlas()
	if err != nil {
		return err
	}
	if err := renderer.UploadAtlas(atlas); err != nil {
		return err
	}

	input := opengl.NewGLFWInputAdapter(window)
	defer input.Destroy()

	rows := makeRows(rowCount)
	columns := []vtable.Column{
		{Key: "id", Width: 64},
		{Key: "model", MinWidth: 120},
		{Key: "owner", Stretch: 1, MinWidth: 100},
		{Key: "speed", Render: func(c vtable.CellContext) string {
			return fmt.Sprintf("%d km/h", c.Value)
		}},
		{Key: "price", Render: func(c vtable.CellContext) string {
			return fmt.Sprintf("$%d", c.Value)
		}},
	}

	var selected string
	opts := append(cfg.Options(),
		vtable.WithTextMeasure(atlas.Measure),
		vtable.WithHeaders(nil),
		vtable.WithFooters(map[string]vtable.FooterRenderer{
			"id": func(_ string, rows []vtable.Row) string { return strconv.Itoa(len(rows)) },
			"price": func(_ string, rows []vtable.Row) string {
				total := 0
				for _, r := range rows {
					total += r.(*vehicle).price
				}
				return fmt.Sprintf("$%d", total)
			},
		}),
		vtable.OnRowClick(func(row vtable.Row, index int) {
			selected = row.RowID()
			window.SetTitle(fmt.Sprintf("%s - vehicle #%s", windowTitle, selected))
		}),
	)
	if cfg.Sizing == (vtable.SizingConfig{}) {
		opts = append(opts, vtable.WithAutoHeight())
	}
	table := vtable.New(rows, 22, columns, opts...)
	defer table.Close()

	body := vtable.NewMemorySurface(0, 0)
	parent := vtable.NewMemoryBox(windowWidth-2*margin, windowHeight-2*margin)
	table.Attach(vtable.Surfaces{Body: body, Parent: parent})

	painter := vtable.NewPainter(atlas)
	dl := vtable.AcquireDrawList()
	defer vtable.ReleaseDrawList(dl)
	origin := vtable.Vec2{X: margin, Y: margin}

	// Main loop.
	for !window.ShouldClose() {
		input.Begin()
		glfw.PollEvents()
		in := input.Update()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		parent.SetSize(float32(w-2*margin), float32(h-2*margin))

		table.HandleInput(in, origin)
		table.Frame(time.Now())
		desc := table.Render()
		input.SetCursor(desc.Cursor)

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl.Clear()
		painter.Paint(dl, desc, origin)
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("table render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
