package shell

import "github.com/gemshelf/gemshelf/internal/store"

// register runs the registration flow. Cancellation ('b' at any prompt)
// returns to the welcome loop; only input-source failures are returned.
// Navigation letters are not live here: there is no identity to route yet.
func (r *Router) register() error {
	r.console.Print(renderHeader("REGISTRATION"))
	r.console.Print("Welcome to the Jewelry Inventory System!\n")
	r.console.Print("Creating an account allows you to easily manage your jewelry store inventory and sales data all in one place.\n")
	r.console.Print("Enter 'B' at any prompt to cancel and return to the main menu.\n\n")

	name, err := r.console.ReadLine("Name: ")
	if err != nil {
		return err
	}
	if isCancel(name) {
		r.console.Print("Registration cancelled. Returning to main menu.\n")
		return nil
	}

	var email string
	for {
		email, err = r.console.ReadLine("Email Address: ")
		if err != nil {
			return err
		}
		if isCancel(email) {
			r.console.Print("Registration cancelled. Returning to main menu.\n")
			return nil
		}
		if r.state.Accounts.Exists(email) {
			r.console.Print("Error: This email is already in use. Please try a different email.\n")
			continue
		}
		break
	}

	password, err := r.console.ReadLine("Password: ")
	if err != nil {
		return err
	}
	if isCancel(password) {
		r.console.Print("Registration cancelled. Returning to main menu.\n")
		return nil
	}

	confirm, err := r.console.ReadLine("Confirm Password: ")
	if err != nil {
		return err
	}
	for confirm != password {
		r.console.Print("Error: Passwords do not match. Please try again.\n")
		confirm, err = r.console.ReadLine("Confirm Password (or enter 'B' to cancel): ")
		if err != nil {
			return err
		}
		if isCancel(confirm) {
			r.console.Print("Registration cancelled. Returning to main menu.\n")
			return nil
		}
	}

	if err := r.state.Accounts.Register(name, email, password); err != nil {
		if store.IsDuplicateEmail(err) {
			r.console.Print("Error: This email is already in use. Please try a different email.\n")
			return nil
		}
		return err
	}
	r.logger.Info("account registered", "email", email)
	r.console.Print("\nAccount created successfully! Please proceed to login.\n\n")
	return nil
}

// login runs the login flow. The boolean reports whether an identity was
// established; cancellation and bad credentials both leave the caller in
// the welcome loop.
func (r *Router) login() (Session, bool, error) {
	r.console.Print(renderHeader("LOGIN"))
	r.console.Print("Welcome back to the Jewelry Inventory System!\n")
	r.console.Print("Please enter your account credentials below.\n")
	r.console.Print("Enter 'B' at any prompt to cancel and return to the main menu.\n\n")

	email, err := r.console.ReadLine("Email Address: ")
	if err != nil {
		return Session{}, false, err
	}
	if isCancel(email) {
		r.console.Print("Login cancelled. Returning to main menu.\n")
		return Session{}, false, nil
	}

	password, err := r.console.ReadLine("Password: ")
	if err != nil {
		return Session{}, false, err
	}
	if isCancel(password) {
		r.console.Print("Login cancelled. Returning to main menu.\n")
		return Session{}, false, nil
	}

	acct, ok := r.state.Accounts.Authenticate(email, password)
	if !ok {
		r.logger.Debug("failed login", "email", email)
		r.console.Print("Invalid email or password. Please try again.\n\n")
		return Session{}, false, nil
	}
	r.console.Print("\nLogin successful!\n\n")
	return newSession(acct), true, nil
}
