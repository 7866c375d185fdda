package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/rats/maze"
	"github.com/lixenwraith/rats/torus"
)

func main() {
	rows := flag.Int("rows", 15, "maze height in cells")
	cols := flag.Int("cols", 15, "maze width in cells")
	density := flag.Int("density", 85, "percentage of walls kept (0-100)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	ascii := flag.Bool("ascii", false, "force ASCII walls (default when stdout is not a terminal)")
	interactive := flag.Bool("i", false, "prompt for parameters and generate repeatedly")
	flag.Parse()

	useASCII := *ascii || !term.IsTerminal(int(os.Stdout.Fd()))

	cfg := maze.Config{Rows: *rows, Cols: *cols, Density: *density, Seed: *seed}
	if !*interactive {
		if err := generate(os.Stdout, cfg, useASCII); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "interactive mode needs a terminal on stdin")
		os.Exit(2)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== TOROIDAL MAZE GENERATOR ===")

		cfg.Rows = getInt(reader, fmt.Sprintf("Rows in cells (default %d): ", cfg.Rows), cfg.Rows)
		cfg.Cols = getInt(reader, fmt.Sprintf("Cols in cells (default %d): ", cfg.Cols), cfg.Cols)
		cfg.Density = getInt(reader, fmt.Sprintf("Density [0-100] (default %d): ", cfg.Density), cfg.Density)
		cfg.Seed = 0

		if err := generate(os.Stdout, cfg, useASCII); err != nil {
			fmt.Println(err)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// generate builds one maze and writes its statistics and layout to w
func generate(w io.Writer, cfg maze.Config, ascii bool) error {
	if cfg.Rows < 2 || cfg.Cols < 2 {
		return fmt.Errorf("maze must be at least 2x2 cells, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Density < 0 || cfg.Density > 100 {
		return fmt.Errorf("density must be within 0..100, got %d", cfg.Density)
	}

	startT := time.Now()
	m := maze.Generate(cfg)
	dur := time.Since(startT)

	start := torus.Position{Row: maze.CellRows / 2, Col: maze.CellCols / 2}
	open := m.OpenCount()
	reachable := m.Reachable(start)

	fmt.Fprintf(w, "Done in %v\n", dur)
	fmt.Fprintf(w, "Cells: %dx%d  Characters: %dx%d\n", cfg.Rows, cfg.Cols, m.Rows(), m.Cols())
	fmt.Fprintf(w, "Openings: %d  Open: %d  Reachable from %s: %d\n", m.Openings(), open, start, reachable)
	if reachable != open {
		fmt.Fprintln(w, "Status: disconnected regions present")
	}

	for _, line := range m.Lines(ascii) {
		fmt.Fprintln(w, line)
	}
	return nil
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
