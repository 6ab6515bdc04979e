package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/staffsync/go-staffsync/auth"
)

func cmdLogin(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
	email := flags.String("email", "", "account email")
	if err := flags.Parse(args); err != nil {
		return err
	}

	address := *email
	if address == "" {
		var err error
		address, err = promptLine("Email: ")
		if err != nil {
			return err
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	grant, err := application.auth.Login(ctx, auth.Credentials{Email: address, Password: password})
	if err != nil {
		return err
	}

	printSuccess(os.Stdout, fmt.Sprintf("Signed in as %s (%s)", grant.User.Name, grant.User.Role))
	return nil
}

func cmdSignup(ctx context.Context, application *app, args []string) error {
	flags := pflag.NewFlagSet("signup", pflag.ContinueOnError)
	email := flags.String("email", "", "account email")
	name := flags.String("name", "", "full name")
	phone := flags.String("phone", "", "phone number")
	department := flags.String("department", "", "department")
	if err := flags.Parse(args); err != nil {
		return err
	}

	input := auth.SignupInput{
		Email:      *email,
		Name:       *name,
		Phone:      *phone,
		Department: *department,
	}
	var err error
	if input.Email == "" {
		if input.Email, err = promptLine("Email: "); err != nil {
			return err
		}
	}
	if input.Name == "" {
		if input.Name, err = promptLine("Full name: "); err != nil {
			return err
		}
	}
	if input.Department == "" {
		if input.Department, err = promptLine("Department: "); err != nil {
			return err
		}
	}
	if input.Password, err = promptPassword("Password: "); err != nil {
		return err
	}

	grant, err := application.auth.Signup(ctx, input)
	if err != nil {
		return err
	}

	printSuccess(os.Stdout, fmt.Sprintf("Welcome to StaffSync, %s", grant.User.Name))
	return nil
}

func cmdLogout(ctx context.Context, application *app) error {
	if err := application.auth.Logout(ctx); err != nil {
		return err
	}
	printSuccess(os.Stdout, "Signed out")
	return nil
}

func cmdWhoami(ctx context.Context, application *app) error {
	current, err := application.auth.Current()
	if err != nil {
		return err
	}
	if !current.Authenticated() {
		fmt.Println("Not signed in. Run 'staffsync login'.")
		return nil
	}

	profile, err := application.auth.Me(ctx)
	if err != nil {
		return err
	}

	printTitle(os.Stdout, profile.Name)
	printField(os.Stdout, "Email", profile.Email)
	printField(os.Stdout, "Role", profile.Role)
	printField(os.Stdout, "Department", profile.Department)

	if claims, err := auth.ParseClaims(current.AccessToken); err == nil && !claims.ExpiresAt().IsZero() {
		printField(os.Stdout, "Token expires", claims.ExpiresAt().Local().Format("15:04:05 MST"))
	}
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(password), nil
}
