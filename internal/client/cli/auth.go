package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dpetrovs/ember/internal/client/nav"
	"github.com/dpetrovs/ember/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to
// create a new account. A successful registration logs the user in and
// lands them on the profile-creation screen, since new accounts never
// carry a profile.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, string(password)); err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return err
	}

	fmt.Println("Welcome to Ember!")
	a.goTo(nav.RouteProfile)
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the user lands on the screen the navigation guard picks for
// their session: the feed when a profile exists, profile creation when not.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrAuthFailure) {
			fmt.Println("Invalid email or password")
		} else {
			fmt.Printf("Login failed: %v\n", err)
		}
		return err
	}

	fmt.Println("Logged in")
	a.goTo(nav.RouteHome)
	return nil
}

// Logout ends the session. The remote call is best effort; local state is
// always cleared and the user is returned to the login screen.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.profile.Clear()
	a.feed.Reset()
	a.route = nav.RouteAuth
	fmt.Println("Logged out")
	return nil
}

// DeleteAccount asks for confirmation and irreversibly removes the account.
// On success all local state is cleared, same as a logout.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account? This cannot be undone (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		fmt.Printf("Account deletion failed: %v\n", err)
		return err
	}

	a.profile.Clear()
	a.feed.Reset()
	a.route = nav.RouteAuth
	fmt.Println("Account deleted")
	return nil
}
