package extract

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// waitNetworkSettled blocks until no network requests have been in flight
// for quiet, or until max elapses. Timeout is not an error: job boards keep
// analytics beacons running indefinitely, so a hard idle state may never
// arrive and extraction proceeds against whatever has loaded.
func waitNetworkSettled(quiet, max time.Duration) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		if err := network.Enable().Do(ctx); err != nil {
			return err
		}

		var mu sync.Mutex
		inflight := make(map[network.RequestID]struct{})
		settled := make(chan struct{}, 1)
		timer := time.AfterFunc(quiet, func() {
			select {
			case settled <- struct{}{}:
			default:
			}
		})
		defer timer.Stop()

		lctx, cancel := context.WithCancel(ctx)
		defer cancel()
		chromedp.ListenTarget(lctx, func(ev any) {
			mu.Lock()
			defer mu.Unlock()
			switch e := ev.(type) {
			case *network.EventRequestWillBeSent:
				inflight[e.RequestID] = struct{}{}
				timer.Stop()
			case *network.EventLoadingFinished:
				delete(inflight, e.RequestID)
				if len(inflight) == 0 {
					timer.Reset(quiet)
				}
			case *network.EventLoadingFailed:
				delete(inflight, e.RequestID)
				if len(inflight) == 0 {
					timer.Reset(quiet)
				}
			}
		})

		select {
		case <-settled:
			return nil
		case <-time.After(max):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
