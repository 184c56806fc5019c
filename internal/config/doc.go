// Package config loads and validates fetcher configuration from YAML.
//
// Config files may reference environment variables with ${VAR} syntax; they
// are expanded before parsing. Credentials are expected to arrive that way
// (JQUANTS_EMAIL / JQUANTS_PASSWORD), never as literals in the file.
package config
