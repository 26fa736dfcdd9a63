// Package config loads the shortcuts runtime settings.
//
// Settings are resolved with higher sources overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← SHORTCUTS_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/shortcuts/config.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Flags reach the result by being bound to the same viper instance
// before Load is called:
//
//	v := viper.New()
//	_ = v.BindPFlag(config.KeyDebug, cmd.Flags().Lookup("debug"))
//	cfg, err := config.Load(v, configPath)
package config
