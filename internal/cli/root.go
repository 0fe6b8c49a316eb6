package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		s = a.session.Username
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root is the command loop. It reads one line at a time and runs each
// command to completion before prompting again.
func (a *App) Root(ctx context.Context) {

	a.println("Welcome to shelfkeeper (type 'help' for commands)")

	for {
		a.printf("shelf %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.println("input error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "add":
			a.addRecord(ctx)
		case "edit":
			a.editRecord(ctx, args)
		case "delete":
			a.deleteRecord(ctx, args)
		case "list", "l":
			a.list()
		case "search":
			a.search(args)
		case "regex":
			a.regexMode(args)
		case "sort":
			a.sortBy(args)
		case "stats":
			a.stats()
		case "export":
			a.exportRecords(args)
		case "import":
			a.importRecords(ctx, args)
		case "backup":
			a.backup(ctx, args)
		case "restore":
			a.restore(ctx, args)
		case "theme":
			a.toggleTheme(ctx)
		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		a.println("Available commands: add, edit <id>, delete <id>, (l)ist, search <term>, regex on|off, sort <field>, stats, export <file>, import <file>, backup <file>, restore <file>, theme, logout, exit")
	} else {
		a.println("Available commands: register, login, exit")
	}
}

// requireLogin gates catalog commands behind an active session.
func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		a.println("Please login first (type 'login' or 'register')")
		return false
	}
	return true
}
