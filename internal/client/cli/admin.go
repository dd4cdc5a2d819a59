package cli

import (
	"context"
	"errors"
	"fmt"

	pb "github.com/dmitrijs2005/lockify/internal/proto"
)

var errDeleteUsage = errors.New("usage: delete <id> | delete -email <email>")

func printUser(u *pb.User) {
	printlnFn(fmt.Sprintf("%s\t%s\t%s", u.GetId(), u.GetEmail(), u.GetRole()))
}

func (a *App) ListUsers(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		printlnFn("No users")
		return nil
	}
	for _, u := range users {
		printUser(u)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	var (
		u   *pb.User
		err error
	)

	switch {
	case len(args) == 1:
		u, err = a.api.DeleteUser(ctx, args[0])
	case len(args) == 2 && args[0] == "-email":
		u, err = a.api.DeleteUserByEmail(ctx, args[1])
	default:
		return errDeleteUsage
	}
	if err != nil {
		return err
	}

	printlnFn("Deleted:")
	printUser(u)
	return nil
}

func (a *App) DeleteAll(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete ALL users?", "yes", a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	n, err := a.api.DeleteAllUsers(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Deleted %d users", n))
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	printlnFn("OK")
	return nil
}
