package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spacezoom/common"
	"github.com/milk9111/spacezoom/config"
	"github.com/milk9111/spacezoom/logging"
	"github.com/milk9111/spacezoom/prefabs"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred closes happen before exit.
func run(args []string) int {
	cfg, err := config.Load(args, ".env")
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Print(err)
		return 1
	}

	logger := logging.New(cfg.LogLevel, cfg.LogDir)
	defer logger.Close()

	prefabs.Dir = cfg.PrefabDir
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		logger.Error("load scene spec", "err", err)
		log.Print(err)
		return 1
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle(spec.Name)
	ebiten.SetTPS(common.TPS)
	ebiten.SetFullscreen(cfg.Fullscreen)

	game, err := NewGame(cfg, spec, logger.Logger)
	if err != nil {
		logger.Error("start game", "err", err)
		log.Print(err)
		return 1
	}
	defer game.Close()

	logger.Info("journey ready", "seed", cfg.Seed, "log_file", logger.LogFile)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", "err", err)
		log.Print(err)
		return 1
	}
	return 0
}
