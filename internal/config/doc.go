// Package config provides configuration management for credaudit.
package config
