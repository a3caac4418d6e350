/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/internal/logging"
)

var (
	cfgFile string
	config  = viper.New()

	// Populated by the root PersistentPreRunE for every command.
	opts Options
	log  = logging.New(os.Stderr, "warn")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rtcsync",
	Short: "Set or read the clock of a serial-attached RTC",
	Long: `rtcsync sets the real-time clock of a device on a serial port to the
host's local time, or reads the time back.

Without a subcommand the device clock is set. When no port is given the
best guess among the attached serial ports is used.

Examples:
  rtcsync -p /dev/ttyUSB0
  rtcsync --get
  rtcsync --list
  rtcsync set --ntp pool.ntp.org
  rtcsync monitor -p /dev/ttyACM0`,
	Args:          noArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		o, err := loadOptions(config)
		if err != nil {
			return err
		}
		opts = o
		log = logging.New(cmd.ErrOrStderr(), logging.Level(o.Verbose))
		log.WithFields(logrus.Fields{
			"port":   o.Port,
			"baud":   o.Baud,
			"driver": o.Driver,
		}).Debug("options loaded")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetBool("list")
		get, _ := cmd.Flags().GetBool("get")

		switch {
		case list:
			return runList(cmd, opts, false)
		case get:
			return runGet(cmd, opts)
		default:
			return runSet(cmd, opts)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(exitCode(err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rtcsync.yaml)")
	flags.StringP("port", "p", "", "serial port of the clock (default: best guess)")
	flags.StringP("baud", "b", "115200", "baud rate")
	flags.String("ntp", "", "set the clock from this NTP server instead of the host clock")
	flags.Duration("read-timeout", defaultReadTimeout, "how long to wait for each reply byte (100ms resolution)")
	flags.Duration("timeout", defaultTimeout, "deadline for a whole exchange")
	flags.String("driver", "native", "serial driver: native, portable")
	flags.BoolP("verbose", "v", false, "log serial frames and decisions to stderr")

	rootCmd.Flags().Bool("list", false, "list available serial ports and exit")
	rootCmd.Flags().Bool("get", false, "read the clock instead of setting it")

	if err := config.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", rtcsync.ErrInvalidArgument, err)
	})
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", rtcsync.ErrInvalidArgument, err)
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			config.AddConfigPath(home)
		}
		config.SetConfigType("yaml")
		config.SetConfigName(".rtcsync")
	}

	config.SetEnvPrefix("RTCSYNC")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: reading config: %v", rtcsync.ErrInvalidArgument, err)
	}
	log.WithField("file", config.ConfigFileUsed()).Debug("using config file")
	return nil
}
