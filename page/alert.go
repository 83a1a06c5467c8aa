package page

import (
	"strings"

	"github.com/rrosajp/poium/utils"
)

// noSuchAlert is the W3C error code the driver answers with when no alert
// is displayed
const noSuchAlert = "no such alert"

// AcceptAlert accepts the open alert
func (p *Page) AcceptAlert() error {
	return p.d.AcceptAlert()
}

// DismissAlert dismisses the open alert
func (p *Page) DismissAlert() error {
	return p.d.DismissAlert()
}

// AlertPresent reports whether an alert is currently displayed. Failures
// other than the driver's "no such alert" answer are logged, since they say
// nothing about alert state.
func (p *Page) AlertPresent() bool {
	_, err := p.d.AlertText()
	if err == nil {
		return true
	}
	if !strings.Contains(err.Error(), noSuchAlert) {
		utils.Warn("alert check failed: %v", err)
	}
	return false
}

// AlertText returns the text of the open alert
func (p *Page) AlertText() (string, error) {
	return p.d.AlertText()
}
