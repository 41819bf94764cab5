// Package preview runs an interactive terminal view of generated caves.
package preview

import (
	"fmt"
	"io"
	"log/slog"

	"cavegen/internal/generate"
	"cavegen/internal/render"

	"github.com/gdamore/tcell/v2"
)

// maxMessages bounds the message log.
const maxMessages = 20

// Session is one interactive preview bound to a screen. Sessions share no
// state, so any number can run concurrently.
type Session struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      generate.Config
	res      *generate.Result
	messages []string
	logger   *slog.Logger

	// OnGenerate, when set, is called after every successful generation.
	OnGenerate func(cfg *generate.Config, res *generate.Result)
}

// New creates a session drawing on screen. cfg is copied.
func New(screen tcell.Screen, cfg *generate.Config, theme render.Theme, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		screen:   screen,
		renderer: render.NewRenderer(screen, theme),
		cfg:      *cfg,
		logger:   logger,
	}
	s.cfg.Logger = logger
	return s
}

// Config returns a copy of the current parameters.
func (s *Session) Config() generate.Config { return s.cfg }

// Result returns the cave currently shown, or nil before the first
// successful generation.
func (s *Session) Result() *generate.Result { return s.res }

// Messages returns the message log, oldest first.
func (s *Session) Messages() []string { return s.messages }

// Run generates the first cave and processes keys until the user quits.
// The caller owns the screen and must Fini it.
func (s *Session) Run() {
	s.regenerate()
	s.addMessage("arrows/hjkl scroll  n new seed  r regen  +/- fill  [/] smooth  c p e t  q quit")
	for {
		s.draw()
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalised underneath us.
			return
		case *tcell.EventResize:
			s.renderer.Resize()
			s.screen.Sync()
		case *tcell.EventKey:
			if !s.HandleKey(ev) {
				return
			}
		}
	}
}

// HandleKey applies one key press. It reports false when the session should end.
func (s *Session) HandleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionScrollN, ActionScrollS, ActionScrollE, ActionScrollW:
		dx, dy := actionToDelta(action)
		s.renderer.Camera().Scroll(dx, dy)
		if s.res != nil {
			s.renderer.Camera().Clamp(s.res.Grid.Width, s.res.Grid.Height)
		}
	case ActionNewSeed:
		s.cfg.UseRandomSeed = true
		s.regenerate()
	case ActionRegenerate:
		s.regenerate()
	case ActionFillUp:
		s.cfg.FillPercent = min(s.cfg.FillPercent+1, 100)
		s.regenerate()
	case ActionFillDown:
		s.cfg.FillPercent = max(s.cfg.FillPercent-1, 0)
		s.regenerate()
	case ActionSmoothUp:
		s.cfg.SmoothingIterations++
		s.regenerate()
	case ActionSmoothDown:
		s.cfg.SmoothingIterations = max(s.cfg.SmoothingIterations-1, 0)
		s.regenerate()
	case ActionToggleConnectAll:
		s.cfg.ConnectAllRooms = !s.cfg.ConnectAllRooms
		s.regenerate()
	case ActionToggleRegions:
		s.cfg.ProcessRegions = !s.cfg.ProcessRegions
		s.regenerate()
	case ActionToggleEdges:
		s.renderer.ShowEdges = !s.renderer.ShowEdges
	case ActionNextTheme:
		s.renderer.SetTheme(nextTheme(s.renderer.Theme()))
		s.addMessage("theme " + s.renderer.Theme().Name)
	}
	return true
}

func nextTheme(cur render.Theme) render.Theme {
	for i, t := range render.Themes {
		if t.Name == cur.Name {
			return render.Themes[(i+1)%len(render.Themes)]
		}
	}
	return render.Themes[0]
}

// regenerate runs the pipeline with the current parameters. A random seed,
// once drawn, is pinned so later tweaks keep the same cave. Failures are
// reported in the message log and keep the previous cave on screen.
func (s *Session) regenerate() {
	res, err := generate.Generate(&s.cfg)
	if err != nil {
		s.logger.Warn("preview: generation failed", "error", err)
		s.addMessage(fmt.Sprintf("generation failed: %v", err))
		return
	}
	s.cfg.Seed = res.Seed
	s.cfg.UseRandomSeed = false
	s.res = res

	if s.OnGenerate != nil {
		cfg := s.cfg
		s.OnGenerate(&cfg, res)
	}
	s.renderer.CenterOn(res.Grid.Width/2, res.Grid.Height/2)
	s.renderer.Camera().Clamp(res.Grid.Width, res.Grid.Height)
	s.addMessage(fmt.Sprintf("generated %dx%d cave, seed %s", res.Grid.Width, res.Grid.Height, res.Seed))
}

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

func (s *Session) draw() {
	s.renderer.DrawFrame(s.res)
	st := render.Status{Seed: s.cfg.Seed, Config: &s.cfg, Messages: s.messages}
	if s.res != nil {
		st.Rooms, st.Passages, st.Warnings = len(s.res.Rooms), len(s.res.Passages), s.res.Warnings
	}
	s.renderer.DrawHUD(st)
}
