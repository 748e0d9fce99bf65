// Package config defines the settings shared by the ab-modules commands and
// provides helpers to load, validate and save them in YAML format.
//
// Values from the YAML file can be overridden by AB_* environment variables,
// optionally seeded from a dotenv file.
package config
