// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

//go:build linux

// Package main implements the gismeteo-weather service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wneessen/gismeteo-weather/internal/config"
	"github.com/wneessen/gismeteo-weather/internal/i18n"
	"github.com/wneessen/gismeteo-weather/internal/logger"
	"github.com/wneessen/gismeteo-weather/internal/service"
)

const appName = "gismeteo-weather"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	envPath := flag.String("env", ".env", "path to an optional dotenv file")
	flag.Parse()

	// A missing dotenv file is not an error, the environment is used as is
	_ = godotenv.Load(*envPath)

	conf, err := loadConfig(*confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	serv, err := service.New(conf, log, t)
	if err != nil {
		log.Error("failed to initialize gismeteo-weather service", logger.Err(err))
		os.Exit(1)
	}

	log.Info("starting gismeteo-weather service", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date), slog.String("city", conf.Weather.City))
	if err = serv.Run(ctx); err != nil {
		log.Error("failed to run gismeteo-weather service", logger.Err(err))
		os.Exit(1)
	}
	log.Info("shutting down gismeteo-weather service")
}

// loadConfig reads the given config file. Without one it falls back to the default location in
// the user's config directory and finally to the environment alone.
func loadConfig(confPath string) (*config.Config, error) {
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := findConfigFile(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", appName, "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
