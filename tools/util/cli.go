package util

import (
	"fmt"
	"os"
	"time"
)

// Spinner renders a terminal progress spinner until stop is closed.
func Spinner(text string, stop chan bool) {
	frames := []string{"-", "\\", "|", "/"}
	for {
		select {
		case <-stop:
			fmt.Printf("\r")
			return
		default:
			for _, frame := range frames {
				// \r rewinds the cursor so each frame overwrites the last.
				fmt.Printf("\r%s %s... ", frame, text)
				os.Stdout.Sync()
				time.Sleep(100 * time.Millisecond)
			}
		}
	}
}
