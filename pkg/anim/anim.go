// Package anim renders the cosmetic download and loading animations shown
// before the scripted opening turn is read.
package anim

import (
	"fmt"
	"io"
	"time"

	"github.com/chunhub/gemini-chat/pkg/theme"
)

var downloadFrames = []string{
	"[=     ]", "[ =    ]", "[  =   ]", "[   =  ]", "[    = ]", "[     =]",
}

var loadingFrames = []string{
	"  [-----]   ",
	"  [-====]   ",
	"  [==--=]   ",
	"  [===--]   ",
	"  [====-]   ",
	"  [-----]   ",
	"   [--=--]   ",
	"   [---=--]   ",
	"   [----=-]   ",
	"   [-----=]   ",
}

// Downloading sweeps a progress bar from 0 to 100% in the theme's cyan over
// roughly d. Non-positive durations render the sweep without delays.
func Downloading(w io.Writer, th *theme.Theme, d time.Duration) {
	code := th.ForegroundCode("cyan_fg")
	step := d / 100
	for i := 0; i <= 100; i++ {
		if step > 0 {
			time.Sleep(step)
		}
		frame := downloadFrames[i%len(downloadFrames)]
		_, _ = fmt.Fprintf(w, "\r%sDownloading... %s %d%%%s", code, frame, i, theme.Reset)
	}
	_, _ = fmt.Fprintln(w)
	th.Infoln(w, "Download complete.")
}

// Loading cycles the loading patterns in the theme's magenta for roughly d.
// At least one frame is always rendered.
func Loading(w io.Writer, th *theme.Theme, d time.Duration) {
	code := th.ForegroundCode("magenta_fg")
	start := time.Now()
	for i := 0; ; i++ {
		_, _ = fmt.Fprintf(w, "\r%sLoading... %s  %s", code, loadingFrames[i%len(loadingFrames)], theme.Reset)
		if time.Since(start) >= d {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	_, _ = fmt.Fprint(w, "\rLoading complete.          \n")
}
