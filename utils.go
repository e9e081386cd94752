package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// writeClipboardText copies text to the system clipboard. pbcopy is tried
// first on macOS since it handles plain text without surprises.
func writeClipboardText(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return clipboard.WriteAll(text)
}

// trimCanvasText drops trailing blanks on every line and trailing empty
// lines, which is what people want when pasting a drawing elsewhere.
func trimCanvasText(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, " ")
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
