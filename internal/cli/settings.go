package cli

import "context"

// toggleTheme flips the persisted theme between dark and light.
func (a *App) toggleTheme(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	settings, err := a.slots.Settings(ctx)
	if err != nil {
		a.println(err.Error())
		return
	}

	if settings.Theme == "dark" {
		settings.Theme = "light"
	} else {
		settings.Theme = "dark"
	}

	if err := a.slots.SaveSettings(ctx, settings); err != nil {
		a.println(err.Error())
		return
	}
	a.println("Theme set to", settings.Theme)
}
