// Package summary handles console display of run results and statistics.
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/dir2md/internal/render"
	"github.com/bethropolis/dir2md/internal/walker"
)

// Logger defines the minimal logging interface required.
type Logger interface {
	Info(format string, args ...interface{})
}

// Display shows the end results of one run.
func Display(
	logger Logger,
	outputFile string,
	result *walker.Result,
	stats render.Stats,
	duration time.Duration,
) {
	logger.Info("Wrote %s", outputFile)
	logger.Info("Processed %d directories and %d files (%d bytes).",
		result.DirsIncluded, result.FilesIncluded, result.TotalBytes)
	logger.Info("Text files: %d, converted: %d, failed: %d.",
		stats.TextFiles, stats.ConvertedFiles, stats.FailedFiles)
	logger.Info("Skipped %d files and %d directories.",
		result.FilesSkipped, result.DirsSkipped)
	logger.Info("Done in %v.", duration.Round(time.Millisecond))
}

// DisplaySkipped formats and prints the skipped items with their reasons.
func DisplaySkipped(output io.Writer, skippedItems []walker.SkippedItem) {
	// Sort for consistent output
	sort.Slice(skippedItems, func(i, j int) bool {
		return skippedItems[i].Path < skippedItems[j].Path
	})
	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n",
			typeStr,
			50, // Max width for path column
			item.Path,
			item.Reason,
		)
	}
}
