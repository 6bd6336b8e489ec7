package shell

// dashboard renders quick stats and waits for a navigation choice.
func (r *Router) dashboard(sess Session) error {
	r.console.Print(renderDashboard(sess.Name, r.state.Inventory.Len(), r.state.Sales.Len()))
	return r.finishPrompt()
}

// helpPage renders the static instructions and waits for a navigation
// choice.
func (r *Router) helpPage(Session) error {
	r.console.Print(renderHelp())
	return r.finishPrompt()
}
