package opts

import (
	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	SourceRoot string
	UserLogger *status.UserLogger
}
