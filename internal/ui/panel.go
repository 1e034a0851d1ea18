//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"beach-weather/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// Panel renders the tuning controls to the right of the beach.
type Panel struct {
	src    parameterProvider
	width  int
	height int
	image  *ebiten.Image
	title  string

	snapshot     core.ParameterSnapshot
	controls     []panelControl
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
}

// NewPanel constructs a panel of the given size for src. A width of zero
// disables it.
func NewPanel(src parameterProvider, width, height int) *Panel {
	if width <= 0 || height <= 0 {
		return nil
	}
	p := &Panel{src: src, width: width, height: height, title: panelTitle(src.Name())}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]panelControl, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = panelControl{control: ctrl, value: "--"}
		}
		p.layoutControls()
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	return p
}

// Width returns the panel width, zero for a nil panel.
func (p *Panel) Width() int {
	if p == nil {
		return 0
	}
	return p.width
}

// Update refreshes the cached snapshot and handles clicks on the -/+ buttons.
func (p *Panel) Update(panelOffsetX int) {
	if p == nil {
		return
	}
	p.panelOffsetX = panelOffsetX
	p.snapshot = p.src.Parameters()
	p.refreshControlValues()
	p.handleInput()
}

// Draw paints the panel at offsetX.
func (p *Panel) Draw(screen *ebiten.Image, offsetX int) {
	if p == nil {
		return
	}
	if p.image == nil {
		p.image = ebiten.NewImage(p.width, p.height)
	}
	p.image.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	p.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.image, op)
}

func panelTitle(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " controls"
}

func (p *Panel) refreshControlValues() {
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := p.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.value = strconv.Itoa(parsed)
			state.current = float64(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.value = formatFloat(state.control, parsed)
			state.current = parsed
			state.hasValue = true
		}
	}
}

func (p *Panel) handleInput() {
	if len(p.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < p.panelOffsetX {
		return
	}
	px := mx - p.panelOffsetX
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			p.adjust(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			p.adjust(state, 1)
			return
		}
	}
}

// target returns the value one step from the current one in direction, and
// whether that step stays inside the control's range.
func (p *Panel) target(state *panelControl, direction int) (float64, bool) {
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := state.current + float64(direction)*step
	if ctrl.HasMin && next < ctrl.Min {
		if state.current <= ctrl.Min {
			return 0, false
		}
		next = ctrl.Min
	}
	if ctrl.HasMax && next > ctrl.Max {
		if state.current >= ctrl.Max {
			return 0, false
		}
		next = ctrl.Max
	}
	return next, true
}

func (p *Panel) adjust(state *panelControl, direction int) {
	next, ok := p.target(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(math.Round(next))
		if p.intSetter.SetIntParameter(state.control.Key, v) {
			state.current = float64(v)
			state.value = strconv.Itoa(v)
		}
	case core.ParamTypeFloat:
		if p.floatSetter.SetFloatParameter(state.control.Key, next) {
			state.current = next
			state.value = formatFloat(state.control, next)
		}
	}
}

func (p *Panel) drawControls() {
	face := basicfont.Face7x13
	text.Draw(p.image, p.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(p.controls) == 0 {
		text.Draw(p.image, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+lineHeight, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range p.controls {
		state := &p.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(p.image, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(p.image, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)

		_, minus := p.target(state, -1)
		_, plus := p.target(state, 1)
		drawButton(p.image, state.minusRect, "-", state.hasValue && minus)
		drawButton(p.image, state.plusRect, "+", state.hasValue && plus)
	}
}

func drawButton(dst *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}

func (p *Panel) layoutControls() {
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type panelControl struct {
	control core.ParameterControl
	value   string
	current float64

	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 6
	lineHeight     = 26
	buttonSize     = 16
	buttonGap      = 4
	headerBaseline = 14
	labelBaseline  = 17
	controlsTop    = panelPadding + headerBaseline + 8
)
