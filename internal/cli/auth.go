package cli

import (
	"context"
	"errors"

	"shelfkeeper/internal/auth"
	"shelfkeeper/internal/common"
)

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Username (letters, digits, underscores)", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}

	user, err := a.auth.Register(ctx, auth.RegisterInput{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		var fieldErr *auth.FieldError
		if errors.As(err, &fieldErr) {
			a.printf("%s: %s\n", fieldErr.Field, fieldErr.Message)
		} else {
			a.println(err.Error())
		}
		return
	}

	a.printf("Registered %s. You can now login.\n", user.Username)
}

func (a *App) login(ctx context.Context) {
	identifier, err := GetSimpleText(a.reader, "Username or email", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}

	user, err := a.auth.Login(ctx, auth.Credentials{Identifier: identifier, Password: password})
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.println("Invalid credentials")
		} else {
			a.println(err.Error())
		}
		return
	}

	session, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.println(err.Error())
		return
	}
	a.session = session

	a.printf("Welcome back, %s!\n", user.Username)
}

func (a *App) logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.println(err.Error())
		return
	}
	a.session = nil
	a.println("Logged out")
}
