package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/oshokin/glogin/internal/client/gaia"
	"github.com/oshokin/glogin/internal/logger"
	"github.com/oshokin/glogin/internal/utils"
)

const (
	// browserStepMinDelay is the minimum pause between scripted form actions.
	browserStepMinDelay = 300 * time.Millisecond
	// browserStepMaxDelay is the maximum pause between scripted form actions.
	browserStepMaxDelay = 900 * time.Millisecond

	// browserCleanupDelay gives Chrome time to release profile file locks before removal.
	browserCleanupDelay = 500 * time.Millisecond
)

// ChromeBrowser drives the login pages through a headless Chrome instance.
// Unlike StaticBrowser it does not share the caller's HTTP session, so only
// the authorization code cookie crosses back out of it.
type ChromeBrowser struct {
	browser *rod.Browser
	page    *rod.Page
	tempDir string
}

// NewChromeBrowser launches a headless Chrome with a throwaway profile and
// navigates it to startURL.
func NewChromeBrowser(ctx context.Context, startURL string) (*ChromeBrowser, error) {
	logger.Debug(ctx, "Launching headless browser")

	// A fresh profile per attempt avoids session leftovers and reused
	// fingerprints between logins.
	tempDir, err := os.MkdirTemp("", "glogin-auth-*")
	if err != nil {
		return nil, gaia.NewAuthError("failed to create temporary profile directory", err)
	}

	b := &ChromeBrowser{tempDir: tempDir}

	if err = b.launch(ctx, startURL); err != nil {
		b.Close(ctx)

		return nil, gaia.NewAuthError("failed to load form", err)
	}

	return b, nil
}

// launch starts Chrome, opens a stealth page, and loads the initial URL.
func (b *ChromeBrowser) launch(ctx context.Context, startURL string) (err error) {
	defer recoverBrowserPanic(ctx, "launch", &err)

	chromeLauncher := launcher.New().
		Headless(true).
		UserDataDir(b.tempDir)

	if chromePath, exists := launcher.LookPath(); exists {
		logger.Debugf(ctx, "Using system Chrome installation at: %s", chromePath)

		chromeLauncher = chromeLauncher.Bin(chromePath)
	} else {
		logger.Debug(ctx, "System Chrome not found, downloading Chromium")
	}

	controlURL, err := chromeLauncher.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	b.browser = rod.New().ControlURL(controlURL)
	if err = b.browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	b.page, err = stealth.Page(b.browser)
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}

	b.page = b.page.Context(ctx)

	if err = b.page.Navigate(startURL); err != nil {
		return fmt.Errorf("failed to navigate to login page: %w", err)
	}

	if err = b.page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}

	return nil
}

// HasForm reports whether the current page contains an element matching selector.
func (b *ChromeBrowser) HasForm(ctx context.Context, selector string) bool {
	var found bool

	var err error

	func() {
		defer recoverBrowserPanic(ctx, "HasForm", &err)

		var elements rod.Elements

		elements, err = b.page.Elements(selector)
		found = err == nil && len(elements) > 0
	}()

	return found
}

// SubmitForm fills the form located by formSelector and submits it,
// pausing between actions like a human typist would.
func (b *ChromeBrowser) SubmitForm(ctx context.Context, formSelector string, fieldValues map[string]string) (err error) {
	defer recoverBrowserPanic(ctx, "SubmitForm", &err)

	form, err := b.page.Sleeper(rod.NotFoundSleeper).Element(formSelector)
	if err != nil {
		return gaia.NewAuthErrorf("failed to find form %q in page", formSelector)
	}

	for selector, value := range fieldValues {
		field, fieldErr := form.Sleeper(rod.NotFoundSleeper).Element(selector)
		if fieldErr != nil {
			return gaia.NewAuthErrorf("failed to find input %q in form", selector)
		}

		utils.RandomPause(browserStepMinDelay, browserStepMaxDelay)

		if _, evalErr := field.Eval(`(v) => { this.value = v }`, value); evalErr != nil {
			return gaia.NewAuthError("failed to fill form field", evalErr)
		}
	}

	utils.RandomPause(browserStepMinDelay, browserStepMaxDelay)

	if _, err = form.Eval(`() => this.submit()`); err != nil {
		return gaia.NewAuthError("failed to submit form", err)
	}

	if err = b.page.WaitLoad(); err != nil {
		return gaia.NewAuthError("failed to submit form", err)
	}

	logger.Debugf(ctx, "Form %q submitted", formSelector)

	return nil
}

// GetCookie returns the named cookie from the browser's cookie store.
func (b *ChromeBrowser) GetCookie(ctx context.Context, name string) (value string, err error) {
	defer recoverBrowserPanic(ctx, "GetCookie", &err)

	cookies, err := b.browser.GetCookies()
	if err != nil {
		return "", gaia.NewAuthError("failed to read browser cookies", err)
	}

	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value, nil
		}
	}

	return "", gaia.NewAuthErrorf("cookie %q not found", name)
}

// Close shuts the browser down and removes the throwaway profile.
func (b *ChromeBrowser) Close(ctx context.Context) {
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			logger.Debugf(ctx, "Browser close error (expected): %v", err)
		}
	}

	if b.tempDir != "" {
		// Chrome may still hold file locks right after closing.
		time.Sleep(browserCleanupDelay)

		if err := os.RemoveAll(b.tempDir); err != nil {
			logger.Debugf(ctx, "Could not clean up temp directory %s: %v", b.tempDir, err)
		}
	}
}

// recoverBrowserPanic converts a panic from the browser driver into an error.
// The driver panics when Chrome dies mid-operation.
func recoverBrowserPanic(ctx context.Context, operation string, err *error) {
	if r := recover(); r != nil {
		logger.Debugf(ctx, "%s panic recovered: %v", operation, r)

		if *err == nil {
			*err = gaia.NewAuthErrorf("browser operation %s failed: %v", operation, r)
		}
	}
}
