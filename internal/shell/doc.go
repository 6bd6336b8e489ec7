// Package shell implements the interactive console surface: the line-based
// prompter, the page router, and every user flow (registration, login,
// dashboard, inventory management, sales recording, history, help).
//
// # Navigation interrupts
//
// At almost every prompt the user may type one of the reserved letters
// d, i, s, h, l (case-insensitive) to jump straight to another page.
// Prompts are nested arbitrarily deep, so the jump is modelled as a
// control-flow error: Console.Prompt returns a *NavError, and every frame
// between the prompt and the router returns it unchanged. The router is the
// only place that handles it, which guarantees no further code of the
// interrupted operation runs, no matter how deep the prompt was.
//
// NavError is a signal, not a failure. It is distinct from ErrCancelled
// (the 'b' token), which only aborts the current sub-operation and is
// handled by the nearest enclosing menu loop.
//
// # Router loops
//
// Router.Run owns the anonymous welcome loop (register / login / exit).
// A successful login enters the authenticated loop, which dispatches the
// current page handler and routes NavError targets. The logout target is a
// pseudo-page that exits back to the welcome loop; only the welcome screen's
// Exit option ends the process.
package shell
