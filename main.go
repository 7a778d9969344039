package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"dungeonexplorer/internal/config"
	"dungeonexplorer/internal/logger"
	"dungeonexplorer/pkg/engine/input"
	"dungeonexplorer/pkg/engine/terminal"
	"dungeonexplorer/pkg/game/devtools"
	"dungeonexplorer/pkg/game/gameplay"
	"dungeonexplorer/pkg/game/locale"
	"dungeonexplorer/pkg/game/renderer"
	"dungeonexplorer/pkg/game/renderer/tui"
	"dungeonexplorer/pkg/game/setup"
	"dungeonexplorer/pkg/game/state"
)

func main() {
	cfg := config.Load()

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "dungeon seed (0 picks one from the clock)")
	flag.IntVar(&cfg.GridSize, "size", cfg.GridSize, "rooms along each side of the dungeon")
	flag.IntVar(&cfg.PlayerHealth, "health", cfg.PlayerHealth, "starting health of the player")
	flag.StringVar(&cfg.VocabularyPath, "vocab", cfg.VocabularyPath, "YAML file with room and item word lists")
	flag.StringVar(&cfg.UI, "ui", cfg.UI, "choice prompt: plain (numbered) or select (arrow keys)")
	flag.StringVar(&cfg.Language, "lang", cfg.Language, "message language")
	dumpMap := flag.String("dump-map", "", "write the generated dungeon to this file (- for stdout) and exit")
	noClear := flag.Bool("no-clear", false, "do not clear the screen between turns")
	flag.Parse()

	if err := run(cfg, *dumpMap, *noClear); err != nil {
		fmt.Fprintf(os.Stderr, "dungeonexplorer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, dumpMap string, noClear bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.Setup(cfg, logOut)

	catalog, err := locale.Load(cfg.Language)
	if err != nil {
		return err
	}

	vocab, err := config.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	prompt := input.NewLinePrompt(os.Stdin, os.Stdout)
	prompt.InvalidNumber = catalog.Get(locale.InvalidNumber)
	prompt.OutOfRange = catalog.Get(locale.OutOfRange)

	var name string
	if dumpMap != "" {
		name = "developer"
	} else {
		name, err = setup.ReadPlayerName(prompt, catalog.Get(locale.NamePrompt))
		if err != nil {
			return fmt.Errorf("read player name: %w", err)
		}
	}

	g, err := setup.NewSession(name, setup.Options{
		Size:       cfg.GridSize,
		Health:     &cfg.PlayerHealth,
		Vocabulary: &vocab,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	log = logger.WithSession(log, g.ID)
	log.Info("session started", "seed", seed, "grid_size", cfg.GridSize, "language", catalog.Language(), "ui", cfg.UI)

	if dumpMap != "" {
		return writeMapDump(g, dumpMap, log)
	}

	r := tui.New(os.Stdout, catalog)
	r.ClearScreen = !noClear && terminal.IsTerminal(os.Stdout)
	r.Init()
	g.AddMessage(fmt.Sprintf(catalog.Get(locale.Welcome), g.Player.Name()))

	var chooser input.Chooser = prompt
	if cfg.UI == config.UISelect {
		if terminal.IsTerminal(os.Stdin) {
			sel := input.NewSelector(os.Stdin, os.Stdout)
			sel.Help = catalog.Get(locale.SelectHelp)
			chooser = sel
		} else {
			log.Warn("stdin is not a terminal, falling back to numbered prompt")
		}
	}

	outcome, err := gameplay.NewLoop(g, chooser, r, catalog, log).Run()
	if errors.Is(err, input.ErrInputClosed) {
		r.ShowMessage(catalog.Get(locale.InputClosed))
		log.Info("input closed", "turn", g.Turn)
		return nil
	}
	if err != nil {
		logger.WithError(log, err).Error("session aborted")
		return err
	}

	showEnding(r, catalog, g, outcome)
	return nil
}

// showEnding prints the end banner and a short summary of the session
func showEnding(r renderer.Renderer, catalog *locale.Catalog, g *state.Game, outcome state.Outcome) {
	switch outcome {
	case state.OutcomeDied:
		r.ShowMessage(r.StyleText(catalog.Get(locale.EndDied), renderer.StyleDenied))
	case state.OutcomeQuit:
		r.ShowMessage(r.StyleText(catalog.Get(locale.EndQuit), renderer.StyleSubtle))
	}

	total := g.Grid.Size() * g.Grid.Size()
	r.ShowMessage(fmt.Sprintf(catalog.Get(locale.EndSummary), g.Player.Name(), g.ExploredCount(), total, g.Player.InventorySummary()))
}

// writeMapDump writes the dungeon layout to stdout for "-" and to a file otherwise
func writeMapDump(g *state.Game, dest string, log *slog.Logger) error {
	if dest == "-" {
		return devtools.DumpMap(os.Stdout, g)
	}

	written, err := devtools.DumpMapToFile(g, dest)
	if err != nil {
		return fmt.Errorf("dump map: %w", err)
	}
	log.Info("map dumped", "path", written)
	fmt.Println(written)
	return nil
}

// openLog returns stderr, or the file at path opened for appending
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

