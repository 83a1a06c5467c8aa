package page

import (
	"fmt"

	"github.com/rrosajp/poium/driver"
)

// Cookies returns all cookies visible in the current session
func (p *Page) Cookies() ([]driver.Cookie, error) {
	return p.d.GetCookies()
}

// Cookie returns the cookie with the given name
func (p *Page) Cookie(name string) (*driver.Cookie, error) {
	return p.d.GetCookie(name)
}

// AddCookie adds a cookie to the current session
func (p *Page) AddCookie(cookie driver.Cookie) error {
	if cookie.Name == "" {
		return fmt.Errorf("cookie name must not be empty")
	}
	return p.d.AddCookie(cookie)
}

// AddCookies adds each cookie in turn, stopping at the first failure
func (p *Page) AddCookies(cookies []driver.Cookie) error {
	for _, cookie := range cookies {
		if err := p.AddCookie(cookie); err != nil {
			return err
		}
	}
	return nil
}

// DeleteCookie deletes the single cookie with the given name
func (p *Page) DeleteCookie(name string) error {
	return p.d.DeleteCookie(name)
}

// DeleteAllCookies deletes all cookies in the scope of the session
func (p *Page) DeleteAllCookies() error {
	return p.d.DeleteAllCookies()
}
