package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCtx - корневой контекст для всех команд.
var rootCtx = context.Background()

// cfg заполняется в PersistentPreRunE после проверки.
var cfg = &dashboardConfig{}

var rootCmd = &cobra.Command{
	Use:               "dashboard",
	Short:             "Terminal dashboard for the team leaderboard.",
	Long:              `Dashboard polls the leaderboard API and shows ranks, rank trends and score statistics.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", defaultAPIURL, "Base URL of the leaderboard API")
	flags.Duration("timeout", 0, "Timeout for a single fetch (default 10s)")
	flags.StringP("query", "q", "", "Search by team or member name")
	flags.String("category", "all", "Category: all, top3, top10, top20, active or zero")
	flags.String("sort", "score_desc", "Sort: score_desc, score_asc, name_asc or name_desc")
	flags.Duration("interval", 0, "Refresh interval for watch (default 5s, minimum 1s)")
	flags.String("color", "auto", "Colored output: auto, yes or no")
	flags.String("locale", defaultLocale, "Locale for name sorting (BCP 47)")
	flags.StringP("output", "o", "", "Output file for export (default stdout)")
	flags.String("config", "", "Path to config file")
	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("error binding flags: %v", err))
	}
}

// initConfig подключает файл конфигурации и переменные окружения.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".leaderboard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("LEADERBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())
}

func setup(_ *cobra.Command, _ []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	*cfg = *loaded
	return nil
}

// Execute запускает корневую команду.
func Execute() error {
	return rootCmd.Execute()
}
