//go:build ebiten

package meshview

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cavegen/internal/generate"
)

const margin = 16

var (
	background   = color.RGBA{0x12, 0x10, 0x0e, 0xff}
	wallColor    = color.RGBA{0x6b, 0x5a, 0x4a, 0xff}
	outlineColor = color.RGBA{0xf0, 0xc0, 0x60, 0xff}
)

// Viewer adapts a cave scene to the ebiten.Game interface.
type Viewer struct {
	cfg      generate.Config
	cellSize float64
	logger   *slog.Logger

	scene *Scene
	proj  Projection
	err   error

	width, height int
	showOutlines  bool

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint32
}

// New builds the first scene for cfg and returns a viewer sized w×h.
func New(cfg generate.Config, cellSize float64, w, h int, logger *slog.Logger) (*Viewer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	v := &Viewer{
		cfg:          cfg,
		cellSize:     cellSize,
		logger:       logger,
		width:        w,
		height:       h,
		showOutlines: true,
		white:        white,
	}
	if err := v.rebuild(); err != nil {
		return nil, err
	}
	return v, nil
}

// Update handles per-frame input.
func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		v.cfg.UseRandomSeed = true
		v.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		v.cfg.FillPercent = min(v.cfg.FillPercent+1, 100)
		v.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		v.cfg.FillPercent = max(v.cfg.FillPercent-1, 0)
		v.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		v.showOutlines = !v.showOutlines
	}
	return nil
}

// regenerate keeps the previous scene on failure and shows the error.
func (v *Viewer) regenerate() {
	if err := v.rebuild(); err != nil {
		v.err = err
		v.logger.Warn("meshview: regenerate failed", "error", err)
		return
	}
	v.err = nil
}

func (v *Viewer) rebuild() error {
	s, err := Build(&v.cfg, v.cellSize)
	if err != nil {
		return err
	}
	v.cfg.Seed = s.Result.Seed
	v.cfg.UseRandomSeed = false
	v.scene = s
	v.layoutMesh()
	return nil
}

func (v *Viewer) layoutMesh() {
	v.proj = Fit(v.scene.Floor, v.width, v.height, margin)

	v.vertices = v.vertices[:0]
	r, g, b, a := wallColor.RGBA()
	for _, p := range v.scene.Floor.Vertices {
		x, y := v.proj.Apply(p)
		v.vertices = append(v.vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		})
	}
	v.indices = v.indices[:0]
	for _, i := range v.scene.Floor.Indices() {
		v.indices = append(v.indices, uint32(i))
	}
}

// Draw renders the wall plan and, optionally, its outlines.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if len(v.indices) > 0 {
		screen.DrawTriangles32(v.vertices, v.indices, v.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
	if v.showOutlines {
		segs := v.proj.Segments(v.scene.Floor, v.scene.Outlines)
		for i := 0; i+3 < len(segs); i += 4 {
			vector.StrokeLine(screen, segs[i], segs[i+1], segs[i+2], segs[i+3], 1.5, outlineColor, true)
		}
	}

	res := v.scene.Result
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("seed %s (%d)  fill %d%%  rooms %d  passages %d  outlines %d",
		res.Seed, res.SeedValue, v.cfg.FillPercent, len(res.Rooms), len(res.Passages), len(v.scene.Outlines)), 4, 0)
	if v.err != nil {
		ebitenutil.DebugPrintAt(screen, "error: "+v.err.Error(), 4, 14)
	}
	ebitenutil.DebugPrintAt(screen, "N: new seed  R: regenerate  +/-: fill  O: outlines  Q: quit", 4, v.height-16)
}

// Layout keeps the logical screen in step with the window.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.layoutMesh()
	}
	return v.width, v.height
}
