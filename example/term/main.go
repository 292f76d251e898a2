// Command term runs the widget demo in a terminal.
//
//	go run ./example/term             # interactive, quit with ctrl+c
//	go run ./example/term -snapshot   # print one frame and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/go-theft-auto/mui"
	muiterm "github.com/go-theft-auto/mui/backend/term"
	"github.com/go-theft-auto/mui/example/demo"
	"github.com/go-theft-auto/mui/metrics"
)

func main() {
	snapshot := flag.Bool("snapshot", false, "print one frame to stdout and exit")
	stylePath := flag.String("style", "", "style file (TOML) overlaid on the terminal style")
	eastAsian := flag.Bool("east-asian", false, "treat ambiguous-width characters as wide")
	flag.Parse()

	if err := run(*snapshot, *stylePath, *eastAsian); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(snapshot bool, stylePath string, eastAsian bool) error {
	style := muiterm.Style()
	if stylePath != "" {
		data, err := os.ReadFile(stylePath)
		if err != nil {
			return fmt.Errorf("failed to read style: %w", err)
		}
		if style, err = mui.OverlayStyle(style, data); err != nil {
			return err
		}
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	// The alternate screen hides stderr, so logs are dropped while it is up.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if snapshot {
		logger = slog.Default()
	}

	d := demo.New(demo.CellRects(), true)
	r := muiterm.NewRenderer(width, height, muiterm.WithMetrics(metrics.NewCells(eastAsian)))
	m := muiterm.NewModel(r, d.Build, mui.WithStyle(style), mui.WithLogger(logger))
	m.SetLogger(logger)

	if snapshot {
		m.Frame()
		m.Frame()
		if err := m.Err(); err != nil {
			return err
		}
		fmt.Println(m.View())
		return nil
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
