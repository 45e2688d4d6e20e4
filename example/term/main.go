// Example term renders a 100,000 row virtualized table in the terminal.
//
//	go run ./example/term/
//
// Scroll with the wheel, arrows, j/k, PgUp/PgDn and g/G; drag the
// scrollbar thumbs with the mouse; q quits. Set VTABLE_LOG to a file path
// to capture debug logs, which would otherwise corrupt the screen.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/vtable"
	"github.com/go-theft-auto/vtable/backend/term"
)

const rowCount = 100000

var districts = []string{"Ocean Beach", "Little Havana", "Downtown", "Starfish Island", "Vice Point"}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if path := os.Getenv("VTABLE_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		vtable.SetLogOutput(f)
		vtable.SetVerbose(true)
	} else {
		vtable.SetLogOutput(io.Discard)
	}

	cfg, err := vtable.LoadConfig("vtable.yaml")
	if err != nil {
		return err
	}

	rows := make([]vtable.Row, rowCount)
	for i := range rows {
		rows[i] = vtable.MapRow{
			"id":       i + 1,
			"name":     fmt.Sprintf("Vehicle %d", i+1),
			"district": districts[i%len(districts)],
			"wanted":   i % 6,
			"notes":    "Parked near the Malibu Club, engine still warm",
		}
	}

	// Clicking a header moves its column to the front.
	order := []string{"id", "name", "district", "wanted", "notes"}
	var m *term.Model
	opts := append(cfg.Options(),
		vtable.WithStyle(terminalStyle(cfg)),
		vtable.WithHeaders(nil),
		vtable.WithCellOrder(order...),
		vtable.WithFooters(map[string]vtable.FooterRenderer{
			"id": func(_ string, rows []vtable.Row) string { return strconv.Itoa(len(rows)) },
			"wanted": func(_ string, rows []vtable.Row) string {
				total := 0
				for _, r := range rows {
					n, _ := vtable.CellValue(r, "wanted").(int)
					total += n
				}
				return strconv.Itoa(total)
			},
		}),
		vtable.OnHeaderCellClick(func(key string) {
			next := []string{key}
			for _, k := range order {
				if k != key {
					next = append(next, k)
				}
			}
			order = next
			m.Engine().SetCellOrder(order...)
		}),
	)
	columns := []vtable.Column{
		{Key: "id", Width: 8},
		{Key: "name", Width: 16},
		{Key: "district", Width: 18},
		{Key: "wanted", Width: 8, Render: func(c vtable.CellContext) string {
			n, _ := c.Value.(int)
			return fmt.Sprintf("%-5s", stars(n))
		}},
		{Key: "notes", Width: 60},
	}

	m = term.New(rows, columns, opts...)
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// terminalStyle keeps the configured colors but the terminal's cell metrics.
func terminalStyle(cfg *vtable.Config) vtable.Style {
	s := cfg.Style()
	t := vtable.TerminalStyle()
	s.CharWidth, s.CharHeight, s.CellPadding = t.CharWidth, t.CharHeight, t.CellPadding
	s.Header.BorderWidth, s.Body.BorderWidth, s.Footer.BorderWidth = 0, 0, 0
	s.Vertical.Thickness, s.Vertical.ThumbMin = t.Vertical.Thickness, t.Vertical.ThumbMin
	s.Horizontal.Thickness, s.Horizontal.ThumbMin = t.Horizontal.Thickness, t.Horizontal.ThumbMin
	return s
}

func stars(n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = '*'
	}
	return string(out)
}
