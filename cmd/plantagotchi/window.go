//go:build cgo

package main

import (
	"github.com/appengine-ltd/plantagotchi/internal/config"
	"github.com/appengine-ltd/plantagotchi/internal/gui"
)

const windowAvailable = true

func runWindow(cfg *config.Config, s *session, notice string) error {
	return gui.NewApp(gui.AppConfig{
		Version:    version,
		Controller: s.ctrl,
		Feed:       s.feed,
		Width:      int32(cfg.Screen.Width),
		Height:     int32(cfg.Screen.Height),
		FPS:        int32(cfg.Screen.TargetFPS),
		Notice:     notice,
	}).Run()
}
