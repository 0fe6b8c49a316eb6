package cli

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"shelfkeeper/internal/catalog"
	"shelfkeeper/internal/storage"
)

func (a *App) exportRecords(args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		a.println("Usage: export <file>")
		return
	}

	export := a.catalog.Export()
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		a.println(err.Error())
		return
	}
	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		a.println(err.Error())
		return
	}
	a.printf("Exported %d record(s) to %s\n", export.Total, args[0])
}

func (a *App) importRecords(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		a.println("Usage: import <file>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		a.println(err.Error())
		return
	}

	candidates, err := catalog.ParseExport(data)
	if err != nil {
		a.println(err.Error())
		return
	}

	if !confirm(a.reader, "Importing replaces your whole collection. Continue?", a.out) {
		a.println("Import cancelled")
		return
	}

	report, err := a.catalog.ImportRecords(ctx, candidates)
	if err != nil {
		a.println(err.Error())
		return
	}

	if !report.Success {
		a.println("Import failed: no valid records in file")
	} else {
		a.printf("Imported %d record(s)\n", report.Imported)
	}
	for _, importErr := range report.Errors {
		a.printf("  record %d skipped:\n", importErr.Index)
		names := make([]string, 0, len(importErr.Errors))
		for name := range importErr.Errors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			a.printf("    %s: %s\n", name, importErr.Errors[name].Message)
		}
	}
}

// backup writes every persisted slot, users and settings included, so a
// restore recreates the whole application state.
func (a *App) backup(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		a.println("Usage: backup <file>")
		return
	}

	b, err := a.slots.ExportAll(ctx)
	if err != nil {
		a.println(err.Error())
		return
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		a.println(err.Error())
		return
	}
	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		a.println(err.Error())
		return
	}
	a.printf("Backed up %d user(s) and %d record(s) to %s\n", len(b.Users), len(b.Records), args[0])
}

func (a *App) restore(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) != 1 {
		a.println("Usage: restore <file>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		a.println(err.Error())
		return
	}

	var b storage.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		a.println("Unrecognized backup file:", err)
		return
	}

	if !confirm(a.reader, "Restoring replaces all users, records, and settings. Continue?", a.out) {
		a.println("Restore cancelled")
		return
	}

	if err := a.slots.ImportAll(ctx, &b); err != nil {
		a.println("Restore failed:", err)
		return
	}

	// reload in-memory state from the restored slots
	a.session = nil
	if session, err := a.auth.CurrentUser(ctx); err == nil {
		a.session = session
	}
	if err := a.catalog.Reload(ctx); err != nil {
		a.println(err.Error())
		return
	}

	a.printf("Restored %d user(s) and %d record(s)\n", len(b.Users), len(b.Records))
}
