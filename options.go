package folio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/user-none/folio/style"
)

// ErrHelp is returned by ParseArgs when -help is requested. Callers print
// Usage and exit zero instead of treating it as a failure.
var ErrHelp = errors.New("help requested")

// Options holds the parsed command line configuration
type Options struct {
	DataDir    string // -data-dir: override the preference directory
	Theme      string // -theme: theme for this session, empty means saved/default
	Mute       bool   // -mute: start with the ambient soundscape off
	Fullscreen bool   // -fullscreen: start fullscreen
}

// ParseArgs parses command line arguments (without the program name).
// Unknown flags and missing values are errors so typos never launch a
// window with silently ignored settings.
func ParseArgs(args []string) (Options, error) {
	var opts Options

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-data-dir", "--data-dir":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a directory path", args[i-1])
			}
			opts.DataDir = args[i]
		case "-theme", "--theme":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a theme name", args[i-1])
			}
			name, ok := matchThemeName(args[i])
			if !ok {
				return opts, fmt.Errorf("unknown theme %q: use %s", args[i], strings.Join(style.ThemeNames(), ", "))
			}
			opts.Theme = name
		case "-mute", "--mute":
			opts.Mute = true
		case "-fullscreen", "--fullscreen":
			opts.Fullscreen = true
		case "-h", "-help", "--help":
			return opts, ErrHelp
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}

	return opts, nil
}

// matchThemeName resolves a case-insensitive theme name to its canonical form
func matchThemeName(name string) (string, bool) {
	for _, t := range style.ThemeNames() {
		if strings.EqualFold(t, name) {
			return t, true
		}
	}
	return "", false
}

// Usage returns the command line help text
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: folio [options]\n\n")
	b.WriteString("Options:\n")
	b.WriteString("  -data-dir DIR   store preferences and screenshots under DIR\n")
	b.WriteString("  -theme NAME     start with the named theme (")
	b.WriteString(strings.Join(style.ThemeNames(), ", "))
	b.WriteString(")\n")
	b.WriteString("  -mute           start with the ambient soundscape off\n")
	b.WriteString("  -fullscreen     start fullscreen\n")
	b.WriteString("  -help           show this help\n")
	return b.String()
}
