package viewer

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	circlex "github.com/gucio321/circlex/pkg"
)

var _ ebiten.Game = &Viewer{}

const (
	// DefaultExtent is the half-width, in diagram units, of the visible area along the shorter window side.
	DefaultExtent = 14.5
	circleAlpha   = 69 // 0.27 of 255
	minFrames     = 6
	frameStep     = 6
)

var (
	background = colornames.Black
	plainColor = color.NRGBA{R: 255, G: 255, B: 255, A: circleAlpha}
)

// Viewer animates between groups of circles, morphing each group into the next one.
type Viewer struct {
	anim         *circlex.Animation
	frames       int
	nonLinearity float64
	extent       float64
	zoom         float64
	paused       bool
	colored      bool
	showHelp     bool
}

// NewViewer creates a Viewer showing groups in random order.
func NewViewer(groups []circlex.Group) *Viewer {
	return &Viewer{
		anim: circlex.NewAnimation(groups).
			Shuffle(rand.New(rand.NewSource(time.Now().UnixNano()))),
		frames:       circlex.DefaultFrames,
		nonLinearity: circlex.DefaultNonLinearity,
		extent:       DefaultExtent,
		zoom:         1,
	}
}

// Extent sets the half-width of the visible area, see DefaultExtent.
func (v *Viewer) Extent(e float64) *Viewer {
	if e > 0 {
		v.extent = e
	}

	return v
}

// Colored draws every circle of a group in its own hue instead of translucent white.
func (v *Viewer) Colored(c bool) *Viewer {
	v.colored = c
	return v
}

func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.colored = !v.colored
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		v.showHelp = !v.showHelp
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.frames = max(minFrames, v.frames-frameStep)
		v.anim.Frames(v.frames)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.frames += frameStep
		v.anim.Frames(v.frames)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.nonLinearity++
		v.anim.NonLinearity(v.nonLinearity)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.nonLinearity = math.Max(1, v.nonLinearity-1)
		v.anim.NonLinearity(v.nonLinearity)
	}

	_, wheelY := ebiten.Wheel()
	v.zoom = math.Max(0.1, v.zoom+wheelY*0.1)

	if !v.paused {
		v.anim.Step()
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	unit := float64(min(w, h)) / (2 * v.extent) * v.zoom
	cx, cy := float64(w)/2, float64(h)/2

	group := v.anim.Current()
	for i, c := range group {
		var clr color.Color = plainColor
		if v.colored {
			clr = circleColor(i, len(group))
		}

		vector.DrawFilledCircle(screen,
			float32(cx+c.X*unit), float32(cy+c.Y*unit), float32(math.Abs(c.R)*unit),
			clr, true)
	}

	if v.showHelp {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"groups: %d\nframes: %d (left/right)\nnon-linearity: %.0f (up/down)\nspace: pause  c: colours  q: quit",
			v.anim.Len(), v.frames, v.nonLinearity))
	} else if v.paused {
		ebitenutil.DebugPrint(screen, "paused")
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
