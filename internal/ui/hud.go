//go:build ebiten

package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"topoviz/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD renders the parameter panel to the right of the contour view.
type HUD struct {
	provider core.ParameterProvider
	width    int
	snapshot core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	face text.Face
}

// NewHUD constructs a HUD for the provided scene and panel width. Controls,
// setters and readouts are discovered through the core parameter interfaces.
func NewHUD(provider core.ParameterProvider, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Controls"
	}
	h := &HUD{provider: provider, width: width, title: title, face: loadFace(13)}
	if cp, ok := provider.(core.ParameterControlsProvider); ok {
		controls := cp.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := provider.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := provider.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

func loadFace(size float64) text.Face {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if h.provider == nil {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = h.provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX, spanning the full screen height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	ox := float32(offsetX)
	vector.DrawFilledRect(screen, ox, 0, float32(h.width), float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 255}, false)
	h.drawText(screen, h.title, offsetX+panelPadding, panelPadding, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		h.drawText(screen, "No adjustable parameters", offsetX+panelPadding, panelPadding+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	} else {
		h.drawControls(screen, offsetX)
	}
	h.drawReadouts(screen, offsetX, controlsTop+len(h.controls)*lineHeight+sectionGap, height)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control.Step, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

// Adjust steps the control stored under key, as if its button was clicked.
// It reports whether the value changed.
func (h *HUD) Adjust(key string, direction int) bool {
	if h == nil {
		return false
	}
	for i := range h.controls {
		if h.controls[i].control.Key == key && h.controls[i].hasValue {
			return h.applyAdjustment(&h.controls[i], direction)
		}
	}
	return false
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 {
		return false
	}
	target, ok := h.target(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(math.Round(target))
		if v == state.intValue || !h.intSetter.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.intValue = v
		state.floatValue = float64(v)
		state.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if math.Abs(target-state.floatValue) < 1e-9 || !h.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control.Step, target)
	default:
		return false
	}
	return true
}

// target computes the clamped next value, or false when the control cannot
// move further in direction.
func (h *HUD) target(state *hudControlState, direction int) (float64, bool) {
	ctrl := state.control
	var cur, step float64
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		cur = float64(state.intValue)
		step = math.Max(1, math.Round(ctrl.Step))
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		cur = state.floatValue
		step = ctrl.Step
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := cur + float64(direction)*step
	if ctrl.Max > ctrl.Min {
		next = math.Max(ctrl.Min, math.Min(ctrl.Max, next))
	}
	if math.Abs(next-cur) < 1e-9 {
		return 0, false
	}
	return next, true
}

func (h *HUD) drawControls(screen *ebiten.Image, offsetX int) {
	for i := range h.controls {
		state := &h.controls[i]
		top := state.top
		h.drawText(screen, state.control.Label, offsetX+panelPadding, top+labelTop, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		w, _ := text.Measure(state.value, h.face, 0)
		valueX := offsetX + state.minusRect.Min.X - buttonGap - int(math.Ceil(w))
		h.drawText(screen, state.value, valueX, top+labelTop, valueColor)

		_, minusOK := h.target(state, -1)
		_, plusOK := h.target(state, 1)
		h.drawButton(screen, state.minusRect.Add(image.Pt(offsetX, 0)), "-", state.hasValue && minusOK)
		h.drawButton(screen, state.plusRect.Add(image.Pt(offsetX, 0)), "+", state.hasValue && plusOK)
	}
}

// drawReadouts lists the snapshot groups that have no controls attached.
func (h *HUD) drawReadouts(screen *ebiten.Image, offsetX, top, height int) {
	controlled := make(map[string]bool, len(h.controls))
	for _, c := range h.controls {
		controlled[c.control.Key] = true
	}
	y := top
	for _, group := range h.snapshot.Groups {
		if y+readoutLine > height {
			return
		}
		h.drawText(screen, group.Name, offsetX+panelPadding, y, color.RGBA{R: 150, G: 170, B: 200, A: 255})
		y += readoutLine
		for _, p := range group.Params {
			if controlled[p.Key] {
				continue
			}
			if y+readoutLine > height {
				return
			}
			value := p.Value
			if p.Type == core.ParamTypeFloat {
				if f, err := strconv.ParseFloat(value, 64); err == nil {
					value = strconv.FormatFloat(f, 'f', 2, 64)
				}
			}
			h.drawText(screen, fmt.Sprintf("%s: %s", p.Label, value), offsetX+panelPadding+8, y, color.RGBA{R: 190, G: 190, B: 200, A: 255})
			y += readoutLine
		}
		y += readoutLine / 2
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	w, th := text.Measure(label, h.face, 0)
	x := rect.Min.X + (rect.Dx()-int(math.Ceil(w)))/2
	y := rect.Min.Y + (rect.Dy()-int(math.Ceil(th)))/2
	h.drawText(screen, label, x, y, fg)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, h.face, op)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatFloat(step, value float64) string {
	if step <= 0 {
		step = 0.05
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding = 12
	lineHeight   = 36
	buttonSize   = 24
	buttonGap    = 6
	labelTop     = 10
	infoSpacing  = 30
	controlsTop  = panelPadding + 28
	sectionGap   = 12
	readoutLine  = 17
)
