package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nsyszr/festival/config"
	"github.com/nsyszr/festival/pkg/cmd/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var c = new(config.Config)
var cmdHandler = cli.NewHandler(c)

// defaults of the settings, each can be overridden by the env var of the same name
var defaults = map[string]interface{}{
	"PORT":      4000,
	"HOST":      "",
	"DATA_FILE": "db.json",
	"NATS_URL":  "",
	"GRAPHIQL":  true,
	"LOG_LEVEL": "info",
}

var (
	Version   = "dev-master"
	BuildTime = "undefined"
	GitHash   = "undefined"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "festival",
	Short: "Festival schedule GraphQL API",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

// Execute runs the festival command and is called by main.main()
func Execute() {
	c.BuildTime = BuildTime
	c.BuildVersion = Version
	c.BuildHash = GitHash

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.festival.yml)")
	RootCmd.PersistentFlags().String("data-file", "", "JSON dataset loaded at startup (env DATA_FILE)")
	viper.BindPFlag("DATA_FILE", RootCmd.PersistentFlags().Lookup("data-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigType("yaml")
		viper.SetConfigName(".festival") // name of config file (without extension)
		viper.AddConfigPath(configDir())
	}
	viper.AutomaticEnv() // read in environment variables that match

	for key, value := range defaults {
		viper.BindEnv(key)
		viper.SetDefault(key, value)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Could not read config file because %s\n", err)
		}
	}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatal(fmt.Sprintf("Could not read config because %s.", err))
	}
}

// configDir returns the directory searched for .festival.yml
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Clean(home)
}
