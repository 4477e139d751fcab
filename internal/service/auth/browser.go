package auth

//go:generate $MOCKGEN -source=browser.go -destination=mocks/browser_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oshokin/glogin/internal/client/gaia"
	"github.com/oshokin/glogin/internal/config"
	"github.com/oshokin/glogin/internal/logger"
)

// BrowserSession drives the provider's login pages. Submitting a form
// replaces the current page with the response page; that replacement is the
// only way the session moves forward, so a failed submission must leave the
// previous page intact.
type BrowserSession interface {
	// HasForm reports whether the current page contains an element matching selector.
	HasForm(ctx context.Context, selector string) bool
	// SubmitForm fills the form located by formSelector with the given
	// field-selector to value pairs and submits it.
	SubmitForm(ctx context.Context, formSelector string, fieldValues map[string]string) error
	// GetCookie returns the named cookie from the session.
	GetCookie(ctx context.Context, name string) (string, error)
	// Close releases any resources held by the session.
	Close(ctx context.Context)
}

// BrowserFactory opens a BrowserSession at startURL using the shared HTTP session.
type BrowserFactory func(ctx context.Context, httpClient *http.Client, startURL string) (BrowserSession, error)

// NewBrowserFactory returns the factory for the configured browser engine.
func NewBrowserFactory(cfg *config.Config) BrowserFactory {
	if cfg.BrowserEngine == config.BrowserEngineChrome {
		return func(ctx context.Context, _ *http.Client, startURL string) (BrowserSession, error) {
			return NewChromeBrowser(ctx, startURL)
		}
	}

	return func(ctx context.Context, httpClient *http.Client, startURL string) (BrowserSession, error) {
		return NewStaticBrowser(ctx, httpClient, startURL)
	}
}

// StaticBrowser walks the login pages over plain HTTP and parses them with
// goquery. It shares the caller's HTTP session, so every cookie the provider
// sets along the way lands in the shared jar.
type StaticBrowser struct {
	httpClient *http.Client
	doc        *goquery.Document
	currentURL *url.URL
	initialURL *url.URL
}

// NewStaticBrowser fetches startURL and parses it as the session's first page.
func NewStaticBrowser(ctx context.Context, httpClient *http.Client, startURL string) (*StaticBrowser, error) {
	initialURL, err := url.Parse(startURL)
	if err != nil {
		return nil, gaia.NewAuthError("failed to load form", err)
	}

	b := &StaticBrowser{
		httpClient: httpClient,
		initialURL: initialURL,
	}

	doc, finalURL, err := b.fetchDocument(ctx, http.MethodGet, startURL, nil)
	if err != nil {
		return nil, gaia.NewAuthError("failed to load form", err)
	}

	b.doc = doc
	b.currentURL = finalURL

	return b, nil
}

// HasForm reports whether the current page contains an element matching selector.
func (b *StaticBrowser) HasForm(_ context.Context, selector string) bool {
	return b.doc.Find(selector).Length() > 0
}

// SubmitForm fills and submits the form located by formSelector.
//
// Every field selector is resolved before anything is written, so a missing
// field fails without touching the page. The document and current URL are
// replaced only after the whole submission round-trip succeeds.
func (b *StaticBrowser) SubmitForm(ctx context.Context, formSelector string, fieldValues map[string]string) error {
	form := b.doc.Find(formSelector).First()
	if form.Length() == 0 {
		return gaia.NewAuthErrorf("failed to find form %q in page", formSelector)
	}

	for selector := range fieldValues {
		if form.Find(selector).Length() == 0 {
			return gaia.NewAuthErrorf("failed to find input %q in form", selector)
		}
	}

	values := serializeForm(form)

	for selector, value := range fieldValues {
		field := form.Find(selector).First()

		name := field.AttrOr("name", "")
		if name == "" {
			return gaia.NewAuthErrorf("input %q has no name attribute", selector)
		}

		values.Set(name, value)
	}

	targetURL, err := b.resolveAction(form)
	if err != nil {
		return gaia.NewAuthError("failed to submit form", err)
	}

	method := strings.ToUpper(strings.TrimSpace(form.AttrOr("method", "")))
	if method == "" {
		method = http.MethodGet
	}

	doc, finalURL, err := b.fetchDocument(ctx, method, targetURL, values)
	if err != nil {
		return gaia.NewAuthError("failed to submit form", err)
	}

	b.doc = doc
	b.currentURL = finalURL

	logger.Debugf(ctx, "Form %q submitted", formSelector)

	return nil
}

// GetCookie returns the named cookie from the shared session's jar,
// checking the current page's scope first and the initial URL second.
func (b *StaticBrowser) GetCookie(_ context.Context, name string) (string, error) {
	for _, scope := range []*url.URL{b.currentURL, b.initialURL} {
		if scope == nil {
			continue
		}

		for _, cookie := range b.httpClient.Jar.Cookies(scope) {
			if cookie.Name == name {
				return cookie.Value, nil
			}
		}
	}

	return "", gaia.NewAuthErrorf("cookie %q not found", name)
}

// Close is a no-op: the session's HTTP client belongs to the caller.
func (b *StaticBrowser) Close(_ context.Context) {}

// resolveAction returns the form's submission URL, resolving a relative
// action against the current page.
func (b *StaticBrowser) resolveAction(form *goquery.Selection) (string, error) {
	action := form.AttrOr("action", "")
	if action == "" {
		return b.currentURL.String(), nil
	}

	ref, err := url.Parse(action)
	if err != nil {
		return "", fmt.Errorf("invalid form action %q: %w", action, err)
	}

	return b.currentURL.ResolveReference(ref).String(), nil
}

// fetchDocument performs the request and parses the response as the next
// page. It returns the final URL after redirects so relative form actions
// keep resolving correctly.
func (b *StaticBrowser) fetchDocument(
	ctx context.Context,
	method, rawURL string,
	form url.Values,
) (*goquery.Document, *url.URL, error) {
	var request *http.Request

	var err error

	if method == http.MethodGet {
		if len(form) > 0 {
			separator := "?"
			if strings.Contains(rawURL, "?") {
				separator = "&"
			}

			rawURL += separator + form.Encode()
		}

		request, err = http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	} else {
		request, err = http.NewRequestWithContext(ctx, method, rawURL, strings.NewReader(form.Encode()))
		if err == nil {
			request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}

	if err != nil {
		return nil, nil, err
	}

	response, err := b.httpClient.Do(request)
	if err != nil {
		return nil, nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return nil, nil, err
	}

	return doc, response.Request.URL, nil
}

// serializeForm collects the form's submittable controls into url.Values.
// Unchecked checkboxes and radios are omitted, as a real browser would.
func serializeForm(form *goquery.Selection) url.Values {
	values := url.Values{}

	form.Find("input, textarea, select").Each(func(_ int, el *goquery.Selection) {
		name := el.AttrOr("name", "")
		if name == "" {
			return
		}

		switch goquery.NodeName(el) {
		case "input":
			inputType := strings.ToLower(el.AttrOr("type", "text"))

			switch inputType {
			case "checkbox", "radio":
				if _, checked := el.Attr("checked"); !checked {
					return
				}
			case "button", "reset":
				return
			}

			values.Set(name, el.AttrOr("value", ""))
		case "textarea":
			values.Set(name, el.Text())
		case "select":
			option := el.Find("option[selected]").First()
			if option.Length() == 0 {
				option = el.Find("option").First()
			}

			if option.Length() > 0 {
				values.Set(name, option.AttrOr("value", option.Text()))
			}
		}
	})

	return values
}
