// Package config provides environment-based configuration.
//
// Loads from .env.local (godotenv) with real environment taking precedence,
// resolves keys case-insensitively, and validates required fields.
package config
