package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/config"
	"github.com/milk9111/spacezoom/ecs"
	"github.com/milk9111/spacezoom/ecs/component"
	"github.com/milk9111/spacezoom/ecs/entity"
	"github.com/milk9111/spacezoom/ecs/system"
	"github.com/milk9111/spacezoom/prefabs"
	"github.com/milk9111/spacezoom/procgen"
	"github.com/milk9111/spacezoom/synth"
)

type Game struct {
	cfg  *config.Config
	log  *slog.Logger
	spec *prefabs.SceneSpec

	world     *ecs.World
	scheduler *ecs.Scheduler
	camera    ecs.Entity

	content *system.ContentSystem
	audio   *system.AudioSystem
	journey *system.JourneySystem
	render  *system.RenderSystem
	spawns  *procgen.Set

	engine  *synth.Engine
	watcher *prefabs.Watcher
	hud     *HUD
}

func NewGame(cfg *config.Config, spec *prefabs.SceneSpec, logger *slog.Logger) (*Game, error) {
	g := &Game{cfg: cfg, log: logger, spec: spec, world: ecs.NewWorld()}
	rng := rand.New(rand.NewSource(cfg.Seed))

	camera, err := entity.NewCamera(g.world, spec)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.camera = camera
	g.applyAdvanceOverride()

	clouds, err := procgen.NewCloudCache(spec.Content.CloudCache, spec.Content.CloudPoints, rng)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if err := entity.BuildScene(g.world, spec, rng, clouds); err != nil {
		return nil, fmt.Errorf("game: build scene: %w", err)
	}
	if cfg.Fullscreen {
		if _, scene, ok := ecs.First(g.world, component.SceneComponent.Kind()); ok {
			scene.Fullscreen = true
		}
	}

	params := entity.AudioParams(spec)
	g.engine = synth.NewEngine(params, cfg.Muted, logger.With("component", "synth"))
	if err := g.engine.Start(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
	}

	g.spawns = procgen.NewSet(entity.ContentRules(spec), rng)
	g.content = system.NewContentSystem(g.spawns, clouds, logger)
	g.audio = system.NewAudioSystem(g.engine, params, logger)
	g.journey = system.NewJourneySystem(spec.Script, logger)
	g.render = system.NewRenderSystem(spec.Content.Fog.Near, spec.Content.Fog.Far)
	g.hud = NewHUD(g, spec.HUD)

	g.scheduler = ecs.NewScheduler(
		system.NewClockSystem(common.TPS),
		system.NewInputSystem(g.pollInput, ebiten.SetFullscreen),
		system.NewOrbitSystem(common.TPS),
		system.NewFlightSystem(logger),
		system.NewTweenSystem(),
		g.content,
		g.journey,
		g.audio,
		system.NewSpinSystem(),
		system.NewHUDSystem(),
	)

	g.watcher = g.watchPrefabs()
	return g, nil
}

// pollInput reads the devices but hides clicks that land on the overlay so
// they do not also start a drag or hit the planet.
func (g *Game) pollInput() system.RawInput {
	raw := system.PollEbiten()
	if g.hud.Contains(int(raw.CursorX), int(raw.CursorY)) {
		raw.LeftJustPressed = false
		raw.WheelY = 0
	}
	return raw
}

func (g *Game) watchPrefabs() *prefabs.Watcher {
	dir := g.cfg.PrefabDir
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		g.log.Debug("prefab dir not found, hot reload disabled", "dir", dir)
		return nil
	}
	dirs := []string{dir}
	scripts := filepath.Join(dir, "scripts")
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		dirs = append(dirs, scripts)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		g.log.Warn("prefab watcher failed, hot reload disabled", "err", err)
		return nil
	}
	g.log.Info("watching prefabs", "dirs", dirs)
	return w
}

func (g *Game) Update() error {
	g.hud.UI.Update()
	g.scheduler.Update(g.world)
	g.hud.Sync(g.world)
	g.reloadChanged()
	return nil
}

func (g *Game) reloadChanged() {
	spec, script := false, false
	for _, path := range g.watcher.Poll() {
		switch {
		case prefabs.IsSpecFile(path):
			spec = true
		case prefabs.IsScriptFile(path):
			script = true
		}
	}
	if spec {
		g.reloadSpec()
	}
	if script {
		g.log.Info("journey script changed, reloading")
		g.journey.Reload()
	}
}

// reloadSpec swaps in edited tuning without rebuilding the scene. A spec
// that fails to load or validate leaves the running one in place.
func (g *Game) reloadSpec() {
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		g.log.Warn("scene spec reload failed, keeping the current one", "err", err)
		return
	}
	g.spec = spec

	if flight, ok := ecs.Get(g.world, g.camera, component.FlightComponent.Kind()); ok {
		flight.Tuning = entity.FlightTuning(spec)
		flight.Gate.Threshold = flight.Tuning.Threshold
	}
	if orbit, ok := ecs.Get(g.world, g.camera, component.OrbitComponent.Kind()); ok {
		orbit.MinDistance = spec.Orbit.MinDistance
		orbit.MaxDistance = spec.Orbit.MaxDistance
		orbit.RotateSpeed = spec.Orbit.RotateSpeed
		orbit.ZoomSpeed = spec.Orbit.ZoomSpeed
		orbit.Glide = spec.Orbit.Glide
	}
	g.applyAdvanceOverride()

	g.spawns.SetRules(entity.ContentRules(spec))
	g.content.Invalidate(g.world)

	params := entity.AudioParams(spec)
	g.audio.SetParams(params)
	g.engine.SetParams(params)

	g.render.FogNear = spec.Content.Fog.Near
	g.render.FogFar = spec.Content.Fog.Far
	g.log.Info("scene spec reloaded")
}

// applyAdvanceOverride lets the command line pick the auto flight pace over
// the scene spec.
func (g *Game) applyAdvanceOverride() {
	if g.cfg.Advance == "" {
		return
	}
	if flight, ok := ecs.Get(g.world, g.camera, component.FlightComponent.Kind()); ok {
		flight.Tuning.Advance = component.ParseAdvanceMode(g.cfg.Advance)
	}
}

func (g *Game) input() *component.Input {
	in, _ := ecs.Get(g.world, g.camera, component.InputComponent.Kind())
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.UI.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops audio playback and the prefab watcher.
func (g *Game) Close() error {
	if g == nil {
		return nil
	}
	werr := g.watcher.Close()
	if err := g.engine.Close(); err != nil {
		return err
	}
	return werr
}
