package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener hands a cover image URL to an external viewer
type Opener struct {
	command string   // configured viewer command, empty for system default
	args    []string // arguments placed before the URL
	logger  *slog.Logger

	// start runs the command without waiting; replaced in tests
	start func(name string, args ...string) error
}

// NewOpener parses command ("feh --scale-down", "open -a Preview") into a
// program and leading args. An empty command uses the system default handler.
func NewOpener(command string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	fields := strings.Fields(command)
	o := &Opener{logger: logger, start: startDetached}
	if len(fields) > 0 {
		o.command = fields[0]
		o.args = fields[1:]
	}
	return o
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start() // Start async, don't wait
}

// Open launches the viewer for rawURL. Only absolute http(s) and file URLs are accepted.
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" {
		return fmt.Errorf("not an image url: %q", rawURL)
	}
	switch u.Scheme {
	case "http", "https", "file":
	default:
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	name, args := o.commandFor(u.String())
	o.logger.Info("opening cover image", "command", name, "args", args)

	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// commandFor returns the program and arguments that will open target
func (o *Opener) commandFor(target string) (string, []string) {
	// Tier 1: User configured a specific viewer
	if o.command != "" {
		return o.command, append(append([]string{}, o.args...), target)
	}

	// Tier 2: Fall back to system default (open/xdg-open/start)
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "cmd", []string{"/c", "start", "", target}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{target}
	}
}
