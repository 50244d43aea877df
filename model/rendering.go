package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws a window of the grid as text blocks
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the cells of g that fall inside view
func (r *TerminalRenderer) Display(g *Grid, view Rect) {
	w := r.out()
	for y := view.MinY; y <= view.MaxY; y++ {
		for x := view.MinX; x <= view.MaxX; x++ {
			if g.IsAlive(Cell{X: x, Y: y}) {
				fmt.Fprint(w, gridPosBlock)
			} else {
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
