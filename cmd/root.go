package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfgUsed string
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "morphos",
	Short: "Grayscale thresholding and binary morphology",
	Long: `Morphos converts an image to grayscale, optionally binarizes it, and
applies a 3x3 morphological filter (dilate, erode, open, close or
dilate_sub_erode) before writing the result to disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.morphos.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text or json)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".morphos" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".morphos")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.SetEnvPrefix("MORPHOS")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		cfgUsed = viper.ConfigFileUsed()
	}
}

func initLogger() {
	log.SetOutput(os.Stderr)

	level := logrus.InfoLevel
	if name := viper.GetString("log.level"); name != "" {
		var err error
		if level, err = logrus.ParseLevel(name); err != nil {
			log.WithError(err).Warn("invalid log level, using info")
			level = logrus.InfoLevel
		}
	}
	log.SetLevel(level)

	switch viper.GetString("log.format") {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if cfgUsed != "" {
		log.Debugln("Using config file:", cfgUsed)
	}
}
