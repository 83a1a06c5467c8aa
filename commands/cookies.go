package commands

import (
	"fmt"

	"github.com/rrosajp/poium/driver"
)

// CookieRequest represents the parameters for cookie get/delete commands
type CookieRequest struct {
	Remote string `json:"remote,omitempty"`
	Name   string `json:"name,omitempty"`
}

// CookieAddRequest represents the parameters for adding cookies
type CookieAddRequest struct {
	Remote  string          `json:"remote,omitempty"`
	Cookies []driver.Cookie `json:"cookies"`
}

// CookiesListCommand returns all cookies of the current session
func CookiesListCommand(req CookieRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	cookies, err := p.Cookies()
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(cookies)
}

// CookieGetCommand returns the cookie with the requested name
func CookieGetCommand(req CookieRequest) *CommandResponse {
	if req.Name == "" {
		return NewErrorResponse(fmt.Errorf("cookie name is required"))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	cookie, err := p.Cookie(req.Name)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(cookie)
}

// CookieAddCommand adds one or more cookies to the current session
func CookieAddCommand(req CookieAddRequest) *CommandResponse {
	if len(req.Cookies) == 0 {
		return NewErrorResponse(fmt.Errorf("at least one cookie is required"))
	}

	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := p.AddCookies(req.Cookies); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(nil)
}

// CookieDeleteCommand deletes the named cookie, or every cookie when no name
// is given
func CookieDeleteCommand(req CookieRequest) *CommandResponse {
	p, err := FindPage(req.Remote)
	if err != nil {
		return NewErrorResponse(err)
	}

	if req.Name == "" {
		if err := p.DeleteAllCookies(); err != nil {
			return NewErrorResponse(err)
		}
		return NewSuccessResponse(nil)
	}

	if err := p.DeleteCookie(req.Name); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(nil)
}
