package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/specforge/specforge/pkg/logger"
	"github.com/specforge/specforge/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SPECFORGE")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.specforge")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "specforge",
	Short: "Generate and convert engineering tech spec documents",
	Long: `Specforge assembles tech spec documents from structured answer files,
following a fixed section schema, and converts the result between
Markdown and wiki markup.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-essential output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
