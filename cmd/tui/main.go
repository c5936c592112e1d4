package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/align4/internal/config"
	"github.com/iamasit07/align4/internal/domain"
	"github.com/iamasit07/align4/internal/tui"
	"github.com/joho/godotenv"
)

func main() {
	d := domain.DefaultDimensions()
	columns := flag.Int("columns", d.Columns, "board width")
	rows := flag.Int("rows", d.Rows, "board height")
	winLength := flag.Int("win", d.WinLength, "disks in a row needed to win")
	useEnv := flag.Bool("env", false, "read board size from BOARD_* settings instead of flags")
	flag.Parse()

	dims := domain.Dimensions{Columns: *columns, Rows: *rows, WinLength: *winLength}
	if *useEnv {
		_ = godotenv.Load()
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dims = cfg.Board.Dimensions()
	}

	session, err := domain.NewSession(dims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
