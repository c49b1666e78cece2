package status

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about batch progress
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 ItemChangeType represents the outcome of one processed item
type ItemChangeType int

const (
	ItemMoved ItemChangeType = iota
	ItemRestored
	ItemSkipped
	ItemFailed
)

// 🖼️ ItemChange represents one processed item
type ItemChange struct {
	Type        ItemChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogItemChange logs one item outcome with appropriate formatting
func (u *UserLogger) LogItemChange(change ItemChange) {
	relPath := filepath.Base(change.Path)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case ItemMoved:
		prefix = "📦"
		action = "Moved"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case ItemRestored:
		prefix = "↩️"
		action = "Restored"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case ItemSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case ItemFailed:
		prefix = "❌"
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 📊 LogBatchChange logs a change to the overall batch
func (u *UserLogger) LogBatchChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "🗂️"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 📄 LogArtifact points the user at a durable artifact (log, ledger)
func (u *UserLogger) LogArtifact(kind, path string) {
	pterm.Debug.WithPrefix(pterm.Prefix{Text: "📝"}).Printf("%s: %s\n", kind, path)
	u.log.Info().Str("path", path).Msg(kind)
}
