package app

import (
	"log/slog"

	"unitconv.dev/internal/appconf"
	"unitconv.dev/internal/conversion"
)

// Application holds the dependencies shared by the HTTP handlers, helpers
// and middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Engine *conversion.Engine
}

// New builds an Application over the built-in conversion table.
func New(cfg appconf.Config, logger *slog.Logger) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	return &Application{
		Config: cfg,
		Logger: logger,
		Engine: conversion.DefaultEngine(),
	}
}
