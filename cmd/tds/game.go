package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/engine"
	"github.com/lixenwraith/tds/logger"
	"github.com/lixenwraith/tds/parameter"
	"github.com/lixenwraith/tds/render"
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

// moveHoldTicks keeps a key press walking until the terminal's key repeat
// delivers the next event
const moveHoldTicks = 8

// Game wires the simulation to a tcell screen and the level editor keys
type Game struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	clock    *engine.Clock
	world    *engine.World

	tuning    *parameter.Tuning
	sound     core.SoundPlayer
	seed      uint64
	levelPath string

	trigger   core.HeldTrigger
	moveDir   vmath.Vec2
	moveTicks int
	brush     int
	message   string

	log *logrus.Entry
}

func newGame(screen tcell.Screen, source engine.TimeSource, level *world.Level, tuning *parameter.Tuning, sound core.SoundPlayer, seed uint64, levelPath string) *Game {
	step := time.Duration(tuning.Sim.Delta * float64(time.Second))
	return &Game{
		screen:    screen,
		renderer:  render.NewTerminalRenderer(screen),
		clock:     engine.NewClock(source, step, tuning.Sim.MaxCatchUp),
		world:     engine.NewWorld(level, tuning, sound, seed),
		tuning:    tuning,
		sound:     sound,
		seed:      seed,
		levelPath: levelPath,
		log:       logger.Component("game"),
	}
}

// loadOrCreateLevel reads path, falling back to an empty level when the file does not exist
func loadOrCreateLevel(path string) (*world.Level, error) {
	l, err := world.LoadLevel(path)
	if errors.Is(err, fs.ErrNotExist) {
		return world.NewLevel(parameter.DefaultLevelWidth, parameter.DefaultLevelHeight), nil
	}
	return l, err
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.step(g.clock.Advance())
			g.draw()
		}
	}
}

// step runs n simulation ticks
func (g *Game) step(n int) {
	for range n {
		if g.moveTicks > 0 {
			g.world.MovePlayer(g.moveDir)
			g.moveTicks--
		}
		g.world.Tick(g.trigger)
		if !g.world.Holding() {
			g.trigger = false
		}
	}
}

func (g *Game) draw() {
	g.renderer.Render(render.Frame{
		Grid:      g.world.Grid,
		Drawables: g.world.Drawables(),
		Camera:    g.world.Player.Obj.Pos,
		Status:    g.status(),
	})
}

func (g *Game) status() string {
	w := g.world
	s := fmt.Sprintf("HP %3.0f AR %2.0f | grenades %d | kills %d | enemies %d | brush %s",
		w.Player.Health.HP, w.Player.Health.Armour, w.Supply.Grenades,
		w.Stats.Kills, len(w.Enemies), g.Brush())
	if g.clock.IsPaused() {
		s += " | PAUSED"
	}
	if g.message != "" {
		s += " | " + g.message
	}
	return s
}

// Brush returns the material placed by the paint key
func (g *Game) Brush() world.Material {
	return world.Palette[g.brush]
}

// handleEvent returns false when the game should exit
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		if g.clock.IsPaused() {
			g.clock.Resume()
		} else {
			g.clock.Pause()
		}
	case tcell.KeyF2:
		g.save()
	case tcell.KeyF3:
		g.load()
	case tcell.KeyRune:
		g.handleRune(ev.Rune())
	}
	return true
}

func (g *Game) handleRune(r rune) {
	switch r {
	case 'w':
		g.walk(vmath.Vec(0, -1))
	case 's':
		g.walk(vmath.Vec(0, 1))
	case 'a':
		g.walk(vmath.Vec(-1, 0))
	case 'd':
		g.walk(vmath.Vec(1, 0))
	case 'q':
		g.world.TurnPlayer(-parameter.PlayerTurnStep)
	case 'e':
		g.world.TurnPlayer(parameter.PlayerTurnStep)
	case 'g', ' ':
		g.toggleTrigger()
	case '[':
		g.brush = (g.brush + len(world.Palette) - 1) % len(world.Palette)
	case ']':
		g.brush = (g.brush + 1) % len(world.Palette)
	case 'p':
		g.paint()
	case 'n':
		g.spawnEnemy()
	case '>':
		g.world.Grid.Widen()
	case '<':
		g.world.Grid.Thin()
	case '+':
		g.world.Grid.Heighten()
	case '-':
		g.world.Grid.Shorten()
	}
}

func (g *Game) walk(dir vmath.Vec2) {
	g.moveDir = dir
	g.moveTicks = moveHoldTicks
}

// toggleTrigger cocks and holds a grenade, or releases the one in hand
// Terminals report no key release, so the trigger latches between presses
func (g *Game) toggleTrigger() {
	if g.world.Holding() {
		g.trigger = false
		return
	}
	g.trigger = core.HeldTrigger(g.world.Cock())
}

// ahead returns the point cells grid cells in front of the player
func (g *Game) ahead(cells float64) vmath.Vec2 {
	p := g.world.Player.Obj
	return p.Pos.Add(p.Heading().Mul(cells * world.CellSize))
}

func (g *Game) paint() {
	x, y := world.Snap(g.ahead(1))
	if px, py := world.Snap(g.world.Player.Obj.Pos); px == x && py == y {
		return
	}
	if g.world.Grid.Insert(x, y, g.Brush()) {
		g.log.WithFields(logrus.Fields{"x": x, "y": y, "material": g.Brush().String()}).Debug("cell painted")
	}
}

func (g *Game) spawnEnemy() {
	pos := g.ahead(2)
	if g.world.Grid.SolidAt(pos) {
		g.message = "blocked"
		return
	}
	g.world.AddEnemy(pos)
}

func (g *Game) save() {
	if err := world.SaveLevel(g.levelPath, g.world.Level()); err != nil {
		g.log.WithError(err).Warn("save failed")
		g.message = "save failed"
		return
	}
	g.message = "saved " + g.levelPath
}

func (g *Game) load() {
	l, err := world.LoadLevel(g.levelPath)
	if err != nil {
		g.log.WithError(err).Warn("load failed")
		g.message = "load failed"
		return
	}
	g.world = engine.NewWorld(l, g.tuning, g.sound, g.seed)
	g.trigger = false
	g.moveTicks = 0
	g.message = "loaded " + g.levelPath
}
