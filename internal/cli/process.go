package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/asset-standardizer/internal/model"
	"github.com/ytget/asset-standardizer/internal/platform"
	"github.com/ytget/asset-standardizer/internal/process"
)

var openFolder = platform.OpenContainingFolder

func newProcessCmd(opts *options) *cobra.Command {
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "process FILE",
		Short: "Run the standardization step for FILE without the window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd.Context(), cmd.OutOrStdout(), args[0], opts.interval, !noOpen)
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the containing folder when done")
	return cmd
}

// runProcess drives one run and prints its progress on a single line
func runProcess(ctx context.Context, out io.Writer, filePath string, interval time.Duration, open bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Set up signal handling for graceful cancellation
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := process.NewService(interval)
	task, events, err := svc.Start(ctx, filePath)
	if err != nil {
		return err
	}

	var final model.ProgressEvent
	for ev := range events {
		if ev.Done() {
			final = ev
			continue
		}
		fmt.Fprintf(out, "\r%3d%%", ev.Percent)
	}
	fmt.Fprintln(out)

	if final.Status != model.TaskStatusCompleted {
		return fmt.Errorf("processing %s ended with status %s", task.ID, final.Status)
	}
	fmt.Fprintf(out, "Processing complete: %s\n", filePath)

	if !open {
		return nil
	}
	if err := openFolder(filePath); err != nil && !errors.Is(err, platform.ErrUnsupportedPlatform) {
		log.Printf("Failed to open folder for %s: %v", filePath, err)
	}
	return nil
}
