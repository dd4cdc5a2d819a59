package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	ListUsers(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// It returns on EOF or "exit"/"quit".
//
//	register              create an account
//	login                 authenticate and keep the session token
//	logout                forget the session token
//	profile               show the logged-in user (protected call)
//	verify [token]        decode a token, the session token by default
//	users                 list registered users
//	delete <id>           delete a user by id
//	delete -email <e>     delete the first user registered under e
//	delete-all            delete every user (asks for confirmation)
//	ping                  check the server
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		fmt.Printf("lockify %s> ", statusFn())
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, verify, users, delete, delete-all, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, verify, users, delete, delete-all, ping, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "verify":
			err = a.Verify(ctx, args)
		case "users":
			err = a.ListUsers(ctx)
		case "delete":
			err = a.Delete(ctx, args)
		case "delete-all":
			err = a.DeleteAll(ctx)
		case "ping":
			err = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
