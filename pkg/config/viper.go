// Package config is responsible for initializing the application's configuration.
// It uses the Viper library to read settings from a config file, environment
// variables, and command-line flags, providing a unified configuration system.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wildpages/wildpages/internal/logging"
)

// Placeholder is the literal token in the template replaced with rendered cards.
const Placeholder = "__REPLACE_ANIMALS_INFO__"

// InitConfig initializes the application's configuration using Viper.
// It sets up default values, defines configuration search paths, and enables
// reading from environment variables. This function is designed to be called
// once at application startup to ensure that configuration is loaded and
// available to all other packages.
func InitConfig(cfgFile string) {
	// --- Set Search Paths ---
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Define the name of the config file to look for (without extension).
		viper.SetConfigName("config")
		// Add paths where Viper should look for the config file.
		viper.AddConfigPath(".")                 // Current working directory
		viper.AddConfigPath("/etc/wildpages/")   // System-wide configuration
		viper.AddConfigPath("$HOME/.wildpages")  // User-specific configuration
	}

	// --- Set Defaults ---
	// Set sensible defaults for key configuration parameters. These will be used
	// if the values are not provided in a config file or via environment variables.
	viper.SetDefault("generator.template", "assets/animals_template.html")
	viper.SetDefault("generator.output", "animals.html")
	viper.SetDefault("generator.input", "animals_data.json")
	viper.SetDefault("generator.placeholder", Placeholder)

	viper.SetDefault("api.url", "https://api.api-ninjas.com/v1/animals")
	viper.SetDefault("api.timeout", "20s")
	// api.key deliberately has no default; it must come from the
	// environment or a config file.

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("logging.development", false)

	// --- Environment Variables ---
	// Enable Viper to read environment variables.
	viper.SetEnvPrefix("WILDPAGES") // e.g., WILDPAGES_GENERATOR_OUTPUT=site.html
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The API key historically lives in API_NINJAS_KEY, with API_KEY as a
	// fallback. Bind both, most specific first.
	_ = viper.BindEnv("api.key", "WILDPAGES_API_KEY", "API_NINJAS_KEY", "API_KEY")

	// --- Read Config File ---
	// Attempt to read the configuration file.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; this is not a fatal error if we can proceed
			// with defaults and environment variables.
			logging.L.Debug("Config file not found; using defaults and environment variables.")
		} else {
			// A real error occurred while parsing the config file.
			logging.L.Error("Error reading config file", zap.Error(err))
		}
	} else {
		logging.L.Info("Using config file", zap.String("path", viper.ConfigFileUsed()))
	}
}
