package main

import (
	"flag"
	"fmt"

	"fog-explorer/internal/commands"
	"fog-explorer/internal/config"
	"fog-explorer/internal/debug"
	"fog-explorer/internal/logger"
	"fog-explorer/internal/scene"
	"fog-explorer/internal/session"
	"fog-explorer/internal/visited"
)

const defaultMaskPath = "logs/visited.png"

// game is the state the console commands act on.
type game struct {
	cfg     config.Config
	cfgPath string
	log     *logger.Logger
	sess    *session.Session
	player  *player
	mask    *visited.Mask
	scene   *scene.Scene
	debug   *debug.Debug
	reg     *commands.Registry
}

func (g *game) registerCommands() {
	g.reg.Register("help", "list commands", nil, g.help)
	g.reg.Register("hud", "toggle overlays: fps mem move grid map", nil, g.hud)
	g.registerTune()
	g.reg.Register("respawn", "put the player back at the spawn point", nil, g.respawn)
	g.reg.Register("mask", "export the visited mask as PNG [path]", nil, g.exportMask)
	g.reg.Register("save", "write the current config to disk", nil, g.save)
}

func (g *game) help([]string) error {
	for _, line := range g.reg.Help() {
		g.log.Log(line)
	}
	return nil
}

func (g *game) hud(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("hud: name an overlay: fps mem move grid map")
	}
	for _, a := range args {
		switch a {
		case "fps":
			g.debug.SetShowFPS(!g.debug.ShowFPS)
		case "mem":
			g.debug.SetShowMemAlloc(!g.debug.ShowMemAlloc)
		case "move":
			g.debug.SetShowHUD(!g.debug.ShowHUD)
		case "grid":
			g.scene.SetGridVisible(!g.scene.GridVisible)
		case "map":
			g.scene.MinimapVisible = !g.scene.MinimapVisible
		default:
			return fmt.Errorf("hud: unknown overlay %q", a)
		}
	}
	return nil
}

// unset marks a tune flag that was not given; flag sets keep values between runs.
const unset = -1

// registerTune adds "tune"; only flags given on the line are applied.
func (g *game) registerTune() {
	fs := flag.NewFlagSet("tune", flag.ContinueOnError)
	targets := []struct {
		name, usage string
		field       func(*config.Config) *float32
	}{
		{"speed", "impulse per held key", func(c *config.Config) *float32 { return &c.Locomotion.MoveSpeed }},
		{"max", "max planar speed", func(c *config.Config) *float32 { return &c.Locomotion.MaxVelocity }},
		{"friction", "friction while moving", func(c *config.Config) *float32 { return &c.Locomotion.Friction }},
		{"stop", "friction while idle", func(c *config.Config) *float32 { return &c.Locomotion.StopFriction }},
		{"sensitivity", "mouse sensitivity", func(c *config.Config) *float32 { return &c.Camera.Sensitivity }},
		{"distance", "camera distance", func(c *config.Config) *float32 { return &c.Camera.Distance }},
	}
	values := make([]*float64, len(targets))
	for i, t := range targets {
		values[i] = fs.Float64(t.name, unset, t.usage)
	}

	g.reg.Register("tune", "set movement/camera tuning, e.g. -max 30 -speed 1.5", fs, func([]string) error {
		next := g.cfg.Clone()
		set := 0
		for i, t := range targets {
			if *values[i] == unset {
				continue
			}
			*t.field(&next) = float32(*values[i])
			*values[i] = unset
			set++
		}
		if set == 0 {
			l := g.cfg.Locomotion
			g.log.Logf("speed %.2f max %.2f friction %.2f stop %.2f sensitivity %.4f distance %.1f",
				l.MoveSpeed, l.MaxVelocity, l.Friction, l.StopFriction, g.cfg.Camera.Sensitivity, g.cfg.Camera.Distance)
			return nil
		}
		if err := next.Validate(); err != nil {
			return fmt.Errorf("tune: %w", err)
		}
		g.cfg = next
		g.sess.Tune(sessionOptions(next))
		g.log.Log("tuning applied")
		return nil
	})
}

func (g *game) respawn([]string) error {
	g.player.Respawn()
	g.sess.Attach(g.player)
	g.log.Log("respawned")
	return nil
}

func (g *game) exportMask(args []string) error {
	path := defaultMaskPath
	if len(args) > 0 {
		path = args[0]
	}
	if err := visited.Export(g.mask, path); err != nil {
		return err
	}
	g.log.Logf("mask written to %s", path)
	return nil
}

func (g *game) save([]string) error {
	if err := config.Save(g.cfgPath, g.cfg); err != nil {
		return err
	}
	g.log.Logf("config saved to %s", g.cfgPath)
	return nil
}
