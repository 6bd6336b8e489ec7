package shell

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gemshelf/gemshelf/internal/preset"
	"github.com/gemshelf/gemshelf/internal/store"
)

// pageHandler runs one page for the given identity. A nil return means the
// page completed normally and control falls back to the main menu; a
// *NavError selects the next page; any other error aborts the session.
type pageHandler func(Session) error

// Router is the top-level dispatcher. It owns the welcome loop, the
// authenticated page loop, and the handler table; every navigation
// interrupt raised anywhere below is resolved here and nowhere else.
type Router struct {
	state    *store.State
	console  *Console
	presets  []preset.Item
	logger   *slog.Logger
	handlers map[Page]pageHandler
}

// NewRouter wires a router over the given state and console. A nil logger
// disables logging.
func NewRouter(state *store.State, console *Console, presets []preset.Item, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Router{
		state:   state,
		console: console,
		presets: presets,
		logger:  logger,
	}
	r.handlers = map[Page]pageHandler{
		PageMainMenu:  r.mainMenu,
		PageDashboard: r.dashboard,
		PageInventory: r.inventoryPage,
		PageSales:     r.salesPage,
		PageHelp:      r.helpPage,
	}
	return r
}

// Run drives the anonymous welcome loop until the user picks Exit. This is
// the only way the process terminates normally; logout and navigation
// always land back in a loop.
func (r *Router) Run() error {
	for {
		r.console.Print(renderWelcome())
		choice, err := r.console.ReadLine("Enter your choice (1-3): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := r.register(); err != nil {
				return err
			}
		case "2":
			sess, ok, err := r.login()
			if err != nil {
				return err
			}
			if ok {
				if err := r.runAuthenticated(sess); err != nil {
					return err
				}
			}
		case "3":
			r.console.Print("Thank you for using the system. Goodbye!\n")
			return nil
		default:
			r.console.Print("Invalid choice. Please try again.\n\n")
		}
	}
}

// runAuthenticated dispatches pages until the session logs out. Navigation
// interrupts from any nesting depth surface here as *NavError; everything
// in between has already unwound, so switching pages is a plain loop step.
// Routing to the page currently shown simply re-renders it.
func (r *Router) runAuthenticated(sess Session) error {
	r.logger.Info("session started", "session_id", sess.ID, "email", sess.Email)
	page := PageMainMenu
	for {
		handler, ok := r.handlers[page]
		if !ok {
			r.logger.Warn("no handler for page", "page", page.String())
			page = PageMainMenu
			continue
		}
		err := handler(sess)
		if err == nil {
			// Completed operation: fall back to the navigation hub.
			page = PageMainMenu
			continue
		}
		if nav, isNav := AsNav(err); isNav {
			if nav.Target == PageLogout {
				r.console.Print("Logging out...\n\n")
				r.logger.Info("session ended", "session_id", sess.ID)
				return nil
			}
			r.logger.Debug("navigation", "session_id", sess.ID, "target", nav.Target.String())
			page = nav.Target
			continue
		}
		if errors.Is(err, ErrCancelled) {
			// A sub-operation cancel that no menu consumed; treat as a
			// completed page.
			page = PageMainMenu
			continue
		}
		return err
	}
}

// mainMenu shows the navigation bar and waits for a navigation command.
func (r *Router) mainMenu(Session) error {
	for {
		r.console.Print(renderNavBar())
		input, err := r.console.ReadLine("Enter navigation option (e.g., D for Dashboard): ")
		if err != nil {
			return err
		}
		if page, ok := ParseNavToken(input); ok {
			return &NavError{Target: page}
		}
		r.console.Print("Invalid navigation choice. Please try again.\n")
	}
}

// finishPrompt is the trailing prompt after a completed operation: a
// navigation letter jumps pages, anything else falls back to the main menu.
func (r *Router) finishPrompt() error {
	input, err := r.console.ReadLine("\nEnter navigation option (D, I, S, H, L): ")
	if err != nil {
		return err
	}
	if page, ok := ParseNavToken(input); ok {
		return &NavError{Target: page}
	}
	return nil
}

// cancelled prints msg when err is the cancel sentinel and passes err
// through unchanged, so navigation interrupts stay silent.
func (r *Router) cancelled(err error, msg string) error {
	if errors.Is(err, ErrCancelled) {
		r.console.Print(msg + "\n")
	}
	return err
}
