package main

import (
	"context"
	"flag"
	"fmt"
)

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("user", "", "username")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *password == "" {
		return fmt.Errorf("both -user and -password are required")
	}

	result, err := a.client.Login(ctx, *user, *password)
	if err != nil {
		return err
	}
	if err := a.store.SetSession(result.Token, result.User); err != nil {
		return fmt.Errorf("login succeeded but storing the session failed: %w", err)
	}

	name := result.Username()
	if name == "" {
		name = *user
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", name)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	user := fs.String("user", "", "username")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *email == "" || *password == "" {
		return fmt.Errorf("-user, -email and -password are all required")
	}

	result, err := a.client.Register(ctx, *user, *email, *password)
	if err != nil {
		return err
	}
	if result.Token != "" {
		if err := a.store.SetSession(result.Token, result.User); err != nil {
			return fmt.Errorf("registration succeeded but storing the session failed: %w", err)
		}
		fmt.Fprintf(a.out, "Registered and logged in as %s\n", *user)
		return nil
	}
	fmt.Fprintln(a.out, "Registered. Log in with 'fintrack login'.")
	return nil
}

func (a *app) logout() error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) whoami() error {
	user, ok := a.store.User()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s\n", user.Username)
	if a.store.Expired(a.now) {
		fmt.Fprintln(a.out, "(session expired; log in again)")
	}
	return nil
}
