package tui

import (
	"fmt"
	"path/filepath"
)

// Canonical short status messages used across the app.
const (
	MsgReloading   = "Reloading site…"
	MsgSiteChanged = "Site changed on disk"
	MsgModalOpen   = "Contact form open"
)

func MsgSiteLoaded(title, source string, pages int) string {
	if source == "" {
		source = "built-in"
	} else {
		source = filepath.Base(source)
	}
	return fmt.Sprintf("%s • %d pages • %s", title, pages, source)
}

func MsgPagePosition(current, count int) string {
	return fmt.Sprintf("page %d/%d", current+1, count)
}
