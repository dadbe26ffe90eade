package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"folio/internal/core"
	"folio/internal/domain"
)

func newCarouselCmd() *cobra.Command {
	var (
		slides   int
		interval time.Duration
		ticks    int
	)
	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Run an autoplaying carousel headless and print each slide change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if slides < 0 || ticks < 0 {
				return errors.New("--slides and --ticks must not be negative")
			}
			cfg := domain.CarouselConfig{Autoplay: true, Interval: interval}
			for i := 0; i < slides; i++ {
				cfg.Slides = append(cfg.Slides, domain.Slide{
					ID:      fmt.Sprintf("%d", i+1),
					Source:  fmt.Sprintf("/assets/slide-%d.png", i+1),
					Caption: fmt.Sprintf("Slide %d", i+1),
				})
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			c, err := core.NewCarousel(ctx, cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			changes := make(chan core.View, 1)
			off := c.OnChange(func(v core.View) {
				select {
				case changes <- v:
				default:
				}
			})
			defer off()

			w := cmd.OutOrStdout()
			view, err := c.Snapshot()
			if err != nil {
				return err
			}
			if view.Empty {
				fmt.Fprintln(w, "no slides")
				return nil
			}
			fmt.Fprintf(w, "slide %d/%d\n", view.ActiveIndex+1, view.SlideCount)
			for i := 0; i < ticks; i++ {
				select {
				case v := <-changes:
					fmt.Fprintf(w, "slide %d/%d\n", v.ActiveIndex+1, v.SlideCount)
				case <-ctx.Done():
					return nil
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&slides, "slides", 3, "number of slides")
	cmd.Flags().DurationVar(&interval, "interval", domain.DefaultInterval, "auto-advance interval")
	cmd.Flags().IntVar(&ticks, "ticks", 3, "number of changes to print before exiting")
	return cmd
}
