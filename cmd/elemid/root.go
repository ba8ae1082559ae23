package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docforge/elemid/elemid"
)

var (
	write   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "elemid",
	Short: "Elemid CLI",
	Long:  "Elemid generates deterministic, collision-free identifiers for elements of tree-structured documents.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(viper.GetString("log-level"), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().String("separator", elemid.DefaultSeparator, `separator joining candidate parts ("_", "-" or "")`)
	rootCmd.PersistentFlags().String("fallback", elemid.DefaultFallback, "fallback token for candidates that sanitize to nothing")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also log to stdout")

	// Flags can be overridden by ELEMID_* environment variables or an
	// elemid.yaml config file in the working directory.
	_ = viper.BindPFlag("separator", rootCmd.PersistentFlags().Lookup("separator"))
	_ = viper.BindPFlag("fallback", rootCmd.PersistentFlags().Lookup("fallback"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("ELEMID")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName("elemid")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("warning: could not read config: %v\n", err)
		}
	}

	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(checkCmd)
}

// genOptions builds the generation options from the effective configuration.
func genOptions() elemid.Options {
	sep := viper.GetString("separator")
	return elemid.Options{
		Separator: &sep,
		Fallback:  viper.GetString("fallback"),
	}
}
