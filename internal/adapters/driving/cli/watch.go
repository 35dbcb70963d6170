package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
)

var (
	watchStrategy string
	watchFormat   string
	watchMaxChars int
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyse a file whenever it changes",
	Long: `Analyses the file, then again every time it is saved, printing one
line per analysis with the change in score since the previous one.
Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchStrategy, "strategy", "s", "", "counting strategy (default from settings)")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "output format: text or json (one object per line)")
	watchCmd.Flags().IntVar(&watchMaxChars, "max-chars", 0, "read at most this many characters")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	format, err := resolveFormat(watchFormat, domain.OutputText)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var writeErr error
	update := func(u domain.WatchUpdate) {
		if writeErr == nil {
			writeErr = writeWatchUpdate(w, u, format)
		}
	}

	opts := driving.AnalyseOptions{Strategy: watchStrategy, MaxChars: watchMaxChars}
	err = watchService.Watch(commandContext(cmd), args[0], opts, update)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return writeErr
}

func writeWatchUpdate(w io.Writer, u domain.WatchUpdate, format domain.OutputFormat) error {
	switch format {
	case domain.OutputJSON:
		return writeJSONLine(w, u)
	case domain.OutputYAML:
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
		return writeYAML(w, u)
	}

	cur := u.Current.Stats
	line := fmt.Sprintf("[%s] words=%d sentences=%d syllables=%d score=%s",
		time.Now().Format(time.TimeOnly), cur.Words, cur.Sentences, cur.Syllables, formatScore(cur))

	if format == domain.OutputTSV {
		line = fmt.Sprintf("%d\t%d\t%d\t%s", cur.Words, cur.Sentences, cur.Syllables, formatScore(cur))
	} else if u.Previous != nil {
		r := newTextRenderer(w)
		delta := u.ScoreDelta()
		style := r.styles.Muted
		switch {
		case delta > 0:
			style = r.styles.Success
		case delta < 0:
			style = r.styles.Error
		}
		line += " " + r.render(style, fmt.Sprintf("(%+.2f score, %+d words)", delta, u.WordDelta()))
	}

	_, err := fmt.Fprintln(w, line)
	return err
}
