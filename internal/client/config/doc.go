// Package config loads runtime settings for the EarTalk CLI.
//
// Sources are applied in order, later ones winning:
//
//  1. Built-in defaults.
//  2. Environment variables (EARTALK_* prefix).
//  3. A JSON file given via -c/-config.
//  4. Command-line flags.
package config
