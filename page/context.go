package page

import (
	"errors"
	"strings"
)

const (
	// NativeAppContext is the context name of the native app layer
	NativeAppContext = "NATIVE_APP"

	// FlutterContext is the context name of an embedded Flutter engine
	FlutterContext = "FLUTTER"

	// webViewMarker appears in the context names of attached WebViews,
	// e.g. "WEBVIEW_com.example.app"
	webViewMarker = "WEBVIEW"
)

// ErrNoWebView is returned when no WebView context is available on the device
var ErrNoWebView = errors.New("no WebView context found")

// CurrentContext returns the context automation commands currently address
func (p *Page) CurrentContext() (string, error) {
	return p.d.CurrentContext()
}

// Contexts lists the contexts available on the device
func (p *Page) Contexts() ([]string, error) {
	return p.d.Contexts()
}

// SwitchToNative switches to the native app context, a no-op when already
// there
func (p *Page) SwitchToNative() error {
	current, err := p.d.CurrentContext()
	if err != nil {
		return err
	}

	if current == NativeAppContext {
		return nil
	}
	return p.d.SwitchToContext(NativeAppContext)
}

// SwitchToWebView switches to a WebView context. With an explicit name the
// switch happens unconditionally. With an empty name: stay put if the current
// context is already a WebView, otherwise switch to the first available
// WebView context, or fail with ErrNoWebView when there is none.
func (p *Page) SwitchToWebView(name string) error {
	if name != "" {
		return p.d.SwitchToContext(name)
	}

	current, err := p.d.CurrentContext()
	if err != nil {
		return err
	}
	if strings.Contains(current, webViewMarker) {
		return nil
	}

	contexts, err := p.d.Contexts()
	if err != nil {
		return err
	}
	for _, context := range contexts {
		if strings.Contains(context, webViewMarker) {
			return p.d.SwitchToContext(context)
		}
	}

	return ErrNoWebView
}

// SwitchToFlutter switches to the Flutter context, a no-op when already there
func (p *Page) SwitchToFlutter() error {
	current, err := p.d.CurrentContext()
	if err != nil {
		return err
	}

	if current == FlutterContext {
		return nil
	}
	return p.d.SwitchToContext(FlutterContext)
}
