package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar reports upload progress
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewUploadProgress creates a byte progress bar for an upload of size
// bytes. It writes to w, or stderr when w is nil.
func NewUploadProgress(size int64, name string, w io.Writer) *ProgressBar {
	if w == nil {
		w = os.Stderr
	}

	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(color.CyanString("Uploading %s", name)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Write advances the bar by len(p) bytes
func (p *ProgressBar) Write(b []byte) (int, error) {
	return p.bar.Write(b)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
