package extract

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// dismissSelectors are candidate close/dismiss buttons, tried in order.
// The target markup is third-party and unversioned, so this list is broad.
var dismissSelectors = []string{
	"button[aria-label='Dismiss']",
	"button[aria-label='Close']",
	".modal__dismiss",
	".contextual-sign-in-modal__modal-dismiss",
	"icon.contextual-sign-in-modal__modal-dismiss-icon",
	"[data-tracking-control-name*='dismiss']",
	"button.close",
}

// hideOverlaysJS clears page scroll locks and hides modal/overlay/backdrop
// constructs so content underneath becomes reachable. Hiding is preferred
// over clicking because overlays frequently lack a dismiss control for
// anonymous visitors.
const hideOverlaysJS = `(() => {
	document.documentElement.style.overflow = '';
	document.body.style.overflow = '';
	document.body.classList.remove('overflow-hidden', 'no-scroll', 'scroll-lock');

	const selectors = [
		"[role='dialog']",
		"[aria-modal='true']",
		"[class*='modal']",
		"[class*='overlay']",
		"[class*='backdrop']",
		"[class*='scrim']",
	];
	let hidden = 0;
	for (const sel of selectors) {
		for (const el of document.querySelectorAll(sel)) {
			if (el.offsetParent !== null || getComputedStyle(el).position === 'fixed') {
				el.style.setProperty('display', 'none', 'important');
				hidden++;
			}
		}
	}
	return hidden;
})()`

// dismissInterstitials runs the overlay-dismissal sequence. It is invoked at
// least twice with a short delay because dynamic modals can reappear after a
// first dismissal. Every step is best-effort; failures are swallowed.
func dismissInterstitials(ctx context.Context, passes int, delay time.Duration) error {
	for i := 0; i < passes; i++ {
		var hidden int
		_ = chromedp.Run(ctx,
			chromedp.Evaluate(hideOverlaysJS, &hidden),
		)
		for _, sel := range dismissSelectors {
			clickCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
			_ = chromedp.Run(clickCtx, chromedp.Click(sel, chromedp.NodeVisible))
			cancel()
		}
		if i < passes-1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}
