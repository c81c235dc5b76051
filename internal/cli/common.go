package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/declanmills/cube/internal/cube"
	"github.com/declanmills/cube/internal/input"
	"github.com/declanmills/cube/internal/search"
)

// flagString reads a string flag and swallows the "not defined" error -
// every caller already knows the flag exists on its own command.
func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// addSearchFlags registers the flags every search-driving command
// shares: log level/verbosity and profiling, following the teacher's
// per-command Flags() registration style (each command builds its own
// flag set in its own init(), rather than cobra's global
// PersistentFlags).
func addSearchFlags(flags *pflag.FlagSet) {
	flags.String("log-level", "", "log level: debug, info, warn, error (overrides -v/-q)")
	flags.BoolP("verbose", "v", false, "verbose logging (debug level)")
	flags.BoolP("quiet", "q", false, "quiet logging (warn level)")
	flags.String("profile", "none", "profile mode: cpu, mem, none")
}

func newLogger(flags *pflag.FlagSet) logrus.FieldLogger {
	log := logrus.New()
	level, _ := flags.GetString("log-level")
	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")

	switch {
	case level != "":
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			parsed = logrus.InfoLevel
		}
		log.SetLevel(parsed)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	case quiet:
		log.SetLevel(logrus.WarnLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	log.SetOutput(os.Stderr)
	return search.WithCorrelationID(log)
}

// startProfiling wires --profile {cpu,mem,none} behind github.com/pkg/profile,
// returning a stop func the caller defers.
func startProfiling(mode string) func() {
	switch mode {
	case "cpu":
		p := profile.Start(profile.CPUProfile, profile.NoShutdownHook)
		return p.Stop
	case "mem":
		p := profile.Start(profile.MemProfile, profile.NoShutdownHook)
		return p.Stop
	default:
		return func() {}
	}
}

// stdinPiped reports whether stdin is a pipe/redirect rather than an
// interactive terminal, so commands with an optional input argument know
// whether reading "" should block or fall back to a default.
func stdinPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// readInputDoc reads the Input-grammar document from a positional
// argument (treated as a file path), or from stdin when arg is "" and
// stdin is piped, or when arg is "-" unconditionally. Returns "" with no
// error when arg is "" and nothing is piped in.
func readInputDoc(arg string) (string, error) {
	if arg == "" && !stdinPiped() {
		return "", nil
	}
	if arg == "" || arg == "-" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// alphabetFromFlags builds a move alphabet from the generic per-class
// enabling flags: --faces/--wide/--slices/--rotations each take a
// letter string drawn from their class's notation (e.g. --faces URF,
// --slices ME), enabling both directions of every letter present.
func alphabetFromFlags(faces, wide, slices, rotations string) []cube.Move {
	var out []cube.Move
	for _, r := range strings.ToUpper(faces) {
		if f, ok := faceFromLetter(byte(r)); ok {
			out = append(out, cube.FaceMove(f, true), cube.FaceMove(f, false))
		}
	}
	for _, r := range strings.ToUpper(wide) {
		if f, ok := faceFromLetter(byte(r)); ok {
			out = append(out, cube.WideMove(f, true), cube.WideMove(f, false))
		}
	}
	for _, r := range strings.ToUpper(slices) {
		if s, ok := sliceFromLetter(byte(r)); ok {
			out = append(out, cube.SliceMove(s, true), cube.SliceMove(s, false))
		}
	}
	for _, r := range strings.ToLower(rotations) {
		if a, ok := axisFromLetter(byte(r)); ok {
			out = append(out, cube.RotationMove(a, true), cube.RotationMove(a, false))
		}
	}
	return out
}

// parseStartOnly parses an Input document and returns just its resolved
// Init cube, for commands (twist, show) that only need a starting state
// and ignore any Goal section.
func parseStartOnly(doc string) (cube.Cube, error) {
	parsed, err := input.Parse(doc, algorithmDB)
	if err != nil {
		return cube.Cube{}, err
	}
	return parsed.Init, nil
}

func faceFromLetter(b byte) (cube.FaceName, bool) {
	switch b {
	case 'U':
		return cube.FaceUp, true
	case 'D':
		return cube.FaceDown, true
	case 'F':
		return cube.FaceFront, true
	case 'B':
		return cube.FaceBack, true
	case 'L':
		return cube.FaceLeft, true
	case 'R':
		return cube.FaceRight, true
	default:
		return 0, false
	}
}

func sliceFromLetter(b byte) (cube.SliceName, bool) {
	switch b {
	case 'M':
		return cube.Middle, true
	case 'E':
		return cube.Equator, true
	case 'S':
		return cube.Standing, true
	default:
		return 0, false
	}
}

func axisFromLetter(b byte) (cube.RotationAxis, bool) {
	switch b {
	case 'x':
		return cube.AxisX, true
	case 'y':
		return cube.AxisY, true
	case 'z':
		return cube.AxisZ, true
	default:
		return 0, false
	}
}
