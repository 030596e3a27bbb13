package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fog-explorer/internal/camera"
	"fog-explorer/internal/commands"
	"fog-explorer/internal/config"
	"fog-explorer/internal/debug"
	"fog-explorer/internal/env"
	"fog-explorer/internal/graphics"
	"fog-explorer/internal/ground"
	"fog-explorer/internal/input"
	"fog-explorer/internal/input/rlinput"
	"fog-explorer/internal/locomotion"
	"fog-explorer/internal/logger"
	"fog-explorer/internal/mapgen"
	"fog-explorer/internal/physics"
	"fog-explorer/internal/scene"
	"fog-explorer/internal/session"
	"fog-explorer/internal/telemetry"
	"fog-explorer/internal/terminal"
	"fog-explorer/internal/visited"

	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	_ = env.Load(".env")
	cfgPath := env.String(env.ConfigPath, config.DefaultPath)
	cfg, loadErr := config.Load(cfgPath)

	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = logger.DefaultPath
	}
	log := logger.New(logPath)
	if loadErr != nil {
		log.Log(loadErr.Error())
	}
	if err := cfg.Validate(); err != nil {
		log.Logf("config: %v; using defaults", err)
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	terrain := mapgen.Generate(terrainOptions(cfg.Terrain))
	log.Logf("terrain: %d tiles, seed %d, max height %.2f", len(terrain.Tiles), terrain.Seed, terrain.MaxHeight)

	world := physics.NewWorld(cfg.Physics.Gravity)
	for _, t := range terrain.Tiles {
		world.AddBody(physics.NewBody(t.Center, t.Size, 0, true))
	}

	sensor := ground.New(world, cfg.Locomotion.GroundRayDistance)
	sensor.Offset = cfg.Locomotion.GroundRayOffset

	mask := visited.NewMask(cfg.Visited.Width, cfg.Visited.Height)
	painter := visited.NewPainter(mask, cfg.Visited.Radius, cfg.Visited.WorldSize)

	pointer := input.NewPointerLock(rlinput.Cursor{})
	sess := session.New(sessionOptions(cfg), pointer, sensor, painter, log)
	sess.SetPhysics(world)

	binding, err := rlinput.Layout(cfg.Input.Layout)
	if err != nil {
		log.Log(err.Error())
		binding, _ = rlinput.Layout("azerty")
	}
	poller := rlinput.NewPoller(binding, sess.Input, sess.Pointer)

	spawn := mgl32.Vec3{0, terrain.MaxHeight + cfg.Player.SpawnHeight, 0}
	p := newPlayer(world, spawn, cfg.Player.Radius, cfg.Player.Mass)
	sess.Attach(p)

	scn := scene.New(terrain, mask, painter)
	scn.SetPlayer(p, cfg.Player.Radius)
	dbg := debug.New()
	dbg.SetShowFPS(true)
	dbg.SetShowHUD(true)

	reg := commands.NewRegistry()
	term := terminal.New(log, reg)
	term.OnOpen = sess.Pause
	term.OnClose = sess.Resume

	g := &game{
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     log,
		sess:    sess,
		player:  p,
		mask:    mask,
		scene:   scn,
		debug:   dbg,
		reg:     reg,
	}
	g.registerCommands()

	if cfg.Telemetry.Enabled {
		hub := telemetry.NewHub(cfg.Telemetry.Interval, log)
		sess.SetSink(hub)
		addr := env.String(env.TelemetryAddr, cfg.Telemetry.Addr)
		go func() {
			if err := hub.Run(ctx, addr); err != nil {
				log.Log(err.Error())
			}
		}()
	}

	var status session.Status
	graphics.Run(cfg.Window, graphics.Hooks{
		Setup: func() {
			sess.Ready(time.Now())
			log.Log("ready: click the view to capture the mouse, ESC for the console")
		},
		Update: func() {
			term.Update()
			if !term.IsOpen() {
				poller.Poll()
			}
			status = sess.Frame(time.Now())
			scn.SetPose(status.Pose)
		},
		Draw: func() {
			scn.Draw()
			dbg.Draw(status)
			term.Draw()
		},
		Teardown: scn.Unload,
		Done:     func() bool { return ctx.Err() != nil },
	})
}

func terrainOptions(t config.Terrain) mapgen.Options {
	o := mapgen.DefaultOptions()
	o.Width = t.Width
	o.Depth = t.Depth
	o.TileSize = t.TileSize
	o.HeightScale = t.HeightScale
	o.Seed = t.Seed
	o.Octaves = t.Octaves
	o.Frequency = t.Frequency
	return o
}

func sessionOptions(c config.Config) session.Options {
	l := c.Locomotion
	return session.Options{
		Locomotion: locomotion.Config{
			MoveSpeed:     l.MoveSpeed,
			Friction:      l.Friction,
			StopFriction:  l.StopFriction,
			MaxVelocity:   l.MaxVelocity,
			StopThreshold: l.StopThreshold,
			Slope: locomotion.SlopeConfig{
				FlatThreshold:      l.FlatThreshold,
				AccelerationFactor: l.AccelerationFactor,
				DecelerationFactor: l.DecelerationFactor,
				MinFactor:          l.MinSlopeFactor,
			},
			HeightInterval: l.HeightInterval,
		},
		Camera: camera.Config{
			Distance:    c.Camera.Distance,
			Height:      c.Camera.Height,
			Sensitivity: c.Camera.Sensitivity,
			MaxPitch:    c.Camera.MaxPitch(),
		},
		CaptureDelay:  c.Camera.CaptureDelay,
		DebugInterval: c.Logging.DebugInterval,
	}
}
