// Package cli provides the harava command-line interface.
package cli

import (
	"github.com/seurahaku/harava/internal/app"
)

// globalApp is the Application built in PersistentPreRunE and shared
// by every command for the duration of one invocation.
var globalApp *app.Application

// SetApp stores the Application for the running command
func SetApp(a *app.Application) {
	globalApp = a
}

// GetApp retrieves the Application built at startup, nil before
// PersistentPreRunE has run.
func GetApp() *app.Application {
	return globalApp
}
