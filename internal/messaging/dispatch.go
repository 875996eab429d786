package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Dispatch opens links in order, waiting each link's Delay first. It stops at
// the first failure; nothing is retried.
func Dispatch(ctx context.Context, o Opener, links []Link) error {
	for i, l := range links {
		if l.Delay > 0 {
			timer := time.NewTimer(l.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		if err := o.Open(ctx, l.URL); err != nil {
			log.Error().Err(err).Int("link", i).Msg("messaging: failed to open link")
			return fmt.Errorf("messaging: dispatch link %d: %w", i, err)
		}
		log.Debug().Int("link", i).Msg("messaging: link opened")
	}
	return nil
}
