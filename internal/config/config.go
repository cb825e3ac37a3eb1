// Package config loads runtime configuration from an optional TOML file and
// environment variables. Environment variables win over the file.
package config

// Config holds runtime configuration for a run.
type Config struct {
	Provider   string
	Output     string
	SeasonType string
	LogLevel   string
	LogFormat  string
	NBAStats   NBAStatsConfig
}

// Load reads configuration with sensible defaults. The config file path comes
// from SHOTCHART_CONFIG, falling back to the user config dir.
func Load() (Config, error) {
	path := envOrDefault(envConfigFile, defaultConfigPath())
	file, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Provider:   defaultProvider,
		Output:     defaultOutput,
		SeasonType: defaultSeasonType,
		LogLevel:   defaultLogLevel,
		LogFormat:  defaultLogFormat,
	}
	if file.Provider != nil {
		cfg.Provider = *file.Provider
	}
	if file.Output != nil {
		cfg.Output = *file.Output
	}
	if file.SeasonType != nil {
		cfg.SeasonType = *file.SeasonType
	}
	if file.Log != nil {
		if file.Log.Level != nil {
			cfg.LogLevel = *file.Log.Level
		}
		if file.Log.Format != nil {
			cfg.LogFormat = *file.Log.Format
		}
	}

	cfg.Provider = envOrDefault(envProvider, cfg.Provider)
	cfg.Output = envOrDefault(envOutput, cfg.Output)
	cfg.SeasonType = envOrDefault(envSeasonType, cfg.SeasonType)
	cfg.LogLevel = envOrDefault(envLogLevel, cfg.LogLevel)
	cfg.LogFormat = envOrDefault(envLogFormat, cfg.LogFormat)
	cfg.NBAStats = loadNBAStats(file.NBAStats)

	return cfg, nil
}
