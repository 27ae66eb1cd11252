package common

import (
	"io"

	"github.com/containeroo/tinyflags"
)

// Flags holds the parsed command line options. All of them are optional.
type Flags struct {
	ConfigPath string
	Quiet      bool
	Validate   bool
}

// ParseArgs parses CLI arguments. Help and version requests are returned as
// errors recognised by tinyflags.IsHelpRequested / tinyflags.IsVersionRequested.
func ParseArgs(name, version string, args []string, out io.Writer, getEnv func(string) string) (Flags, error) {
	var flags Flags
	tf := tinyflags.NewFlagSet(name, tinyflags.ContinueOnError)
	tf.Version(version)
	tf.SetGetEnvFn(getEnv)
	tf.SetOutput(out)

	tf.StringVar(&flags.ConfigPath, "config", "", "Path to TOML configuration file").Value()
	tf.BoolVar(&flags.Quiet, "quiet", false, "Suppress banner output").Value()
	tf.BoolVar(&flags.Validate, "validate", false, "Validate configuration and exit").Value()

	if err := tf.Parse(args); err != nil {
		return Flags{}, err
	}

	return flags, nil
}
