package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// ansiClear moves the cursor home and erases the screen.
const ansiClear = "\033[H\033[2J"

// ClearScreen clears the terminal behind w. On Windows it runs "cls" through
// cmd.exe when w is the process stdout, since older consoles ignore ANSI
// sequences; everywhere else it writes the ANSI clear sequence.
func ClearScreen(w io.Writer) error {
	if runtime.GOOS == "windows" && w == os.Stdout {
		cmd := exec.Command("cmd", "/c", "cls")
		cmd.Stdout = w
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("clearing screen: %w", err)
		}
		return nil
	}
	if _, err := io.WriteString(w, ansiClear); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}
