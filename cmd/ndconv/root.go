package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// envPrefix prefixes every environment override: --log-level ↔ NDCONV_LOG_LEVEL.
	envPrefix = "NDCONV"

	keyLogLevel  = "log-level"
	keyAffine    = "affine"
	keyPrecision = "precision"
	keyPow       = "pow"
)

// context is shared by every subcommand.
type context struct {
	out io.Writer
	log *logrus.Logger
	vip *viper.Viper
}

// newRootCmd builds the command tree writing results to out and
// diagnostics through log.
func newRootCmd(out io.Writer, log *logrus.Logger) *cobra.Command {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	cxt := &context{out: out, log: log, vip: vip}

	cmd := &cobra.Command{
		Use:          "ndconv",
		Short:        "Convert quantities between units using exact rational ratios",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(vip.GetString(keyLogLevel))
			if err != nil {
				return fmt.Errorf("invalid --%s: %w", keyLogLevel, err)
			}
			log.SetLevel(level)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().String(keyLogLevel, logrus.WarnLevel.String(), "Log level (trace, debug, info, warn, error)")
	bindFlags(vip, cmd.PersistentFlags())

	cmd.AddCommand(
		newConvertCmd(cxt),
		newUnitsCmd(cxt),
		newRatioCmd(cxt),
	)

	return cmd
}

// bindFlags makes every flag in fs readable through vip under its own name,
// so the environment can stand in for any flag that was not given.
func bindFlags(vip *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = vip.BindPFlag(f.Name, f)
	})
}
