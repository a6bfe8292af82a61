// Package extract - browser.go locates a Chrome/Chromium binary and builds
// the chromedp allocator options used for headless extraction.
package extract

import (
	"os"
	"runtime"

	"github.com/chromedp/chromedp"
	"github.com/kmorton/resume-tailor/internal/faults"
)

// UserAgent is a realistic desktop identification string. Job boards serve
// degraded or blocked markup to obvious automation user agents.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// chromePaths lists well-known install locations probed when no explicit
// override is configured.
func chromePaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
		}
	case "windows":
		return []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
		}
	default:
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
			"/snap/bin/chromium",
			"/usr/bin/microsoft-edge",
		}
	}
}

// locateBrowser returns the browser executable to use: the explicit override
// if set, otherwise the first well-known path that exists. An empty string
// with nil error means chromedp should use its own default lookup.
func locateBrowser(override string) (string, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", faults.Newf(faults.KindExtractionFailed,
				"configured browser path %q does not exist; fix the chrome_path setting or unset it to probe system locations", override)
		}
		return override, nil
	}
	for _, p := range chromePaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	// chromedp probes PATH itself; only fail loudly after Run reports it.
	return "", nil
}

// allocatorOptions builds the exec allocator options for one extraction.
func allocatorOptions(execPath string, headless bool) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(UserAgent),
	)
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return opts
}
