package shell

import (
	"errors"
	"strings"
)

// Page identifies a top-level page reachable through navigation.
type Page int

const (
	// PageMainMenu is the navigation hub shown after login and after any
	// completed operation.
	PageMainMenu Page = iota

	// PageDashboard shows quick stats for the logged-in user.
	PageDashboard

	// PageInventory is the inventory management page.
	PageInventory

	// PageSales is the sales recording page.
	PageSales

	// PageHelp shows usage instructions.
	PageHelp

	// PageLogout is a pseudo-page: routing to it leaves the authenticated
	// loop and returns to the welcome screen.
	PageLogout
)

// String returns the page name for logs and error messages.
func (p Page) String() string {
	switch p {
	case PageMainMenu:
		return "main-menu"
	case PageDashboard:
		return "dashboard"
	case PageInventory:
		return "inventory"
	case PageSales:
		return "sales"
	case PageHelp:
		return "help"
	case PageLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// navTokens maps the reserved single-letter commands to their target pages.
var navTokens = map[string]Page{
	"d": PageDashboard,
	"i": PageInventory,
	"s": PageSales,
	"h": PageHelp,
	"l": PageLogout,
}

// ParseNavToken reports whether input is a navigation command. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseNavToken(input string) (Page, bool) {
	page, ok := navTokens[strings.ToLower(strings.TrimSpace(input))]
	return page, ok
}

// NavError signals an unconditional jump to another page. It must propagate
// unhandled through every nested prompt call until the router catches it;
// intermediate frames return it as-is so none of their remaining code runs.
type NavError struct {
	Target Page
}

// Error implements the error interface.
func (e *NavError) Error() string {
	return "navigate to " + e.Target.String()
}

// AsNav extracts a NavError from err, unwrapping as needed.
func AsNav(err error) (*NavError, bool) {
	var nav *NavError
	ok := errors.As(err, &nav)
	return nav, ok
}

// ErrCancelled signals that the user abandoned the current sub-operation
// with the 'b' token. Unlike NavError it stops at the nearest enclosing
// menu loop.
var ErrCancelled = errors.New("operation cancelled")

// isCancel reports whether input is the cancel token.
func isCancel(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "b")
}

// isConfirm reports whether input is the confirmation token.
func isConfirm(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "y")
}
