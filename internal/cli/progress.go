package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"docsplit/internal/usecase"
)

// newProgress returns a ProgressCallback that renders a progress bar,
// initialized lazily once the total is known.
func newProgress(description string) usecase.ProgressCallback {
	var bar *progressbar.ProgressBar

	return func(done, total int, current string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", description)),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}
}
