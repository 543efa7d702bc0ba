// Package gui is a small immediate-mode widget surface drawn with raylib. Windows are laid out
// side by side from the top-left corner; clicking a title bar collapses the window.
package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize    = 16
	padding     = 8
	lineHeight  = fontSize + 6
	windowWidth = 380
	windowGap   = 10
	boxSize     = 14
	sliderWidth = 160
	comboWidth  = 200
	cellWidth   = 80
)

var (
	// Reused every frame to avoid per-frame color allocations.
	windowBgColor    = rl.NewColor(24, 24, 28, 235)
	titleBarColor    = rl.NewColor(50, 60, 90, 255)
	widgetColor      = rl.NewColor(60, 60, 70, 255)
	widgetHoverColor = rl.NewColor(80, 80, 100, 255)
	accentColor      = rl.NewColor(110, 150, 230, 255)
	textColor        = rl.NewColor(230, 230, 230, 255)
	tooltipBgColor   = rl.NewColor(40, 40, 40, 245)
)

type window struct {
	collapsed bool
}

// Panel implements the overlay surface. NewFrame must be called before the first widget of a
// frame and Render after the last one, between BeginDrawing and EndDrawing.
type Panel struct {
	// Interactive reports whether the pointer may interact with widgets. When nil the panel is
	// always interactive.
	Interactive func() bool

	font    rl.Font
	windows map[string]*window
	ops     []func()
	popups  []func()

	// per frame
	mouse    rl.Vector2
	clicked  bool
	down     bool
	nextX    float32
	cur      *window
	curStart int
	x, y     float32
	top      float32
	lastItem rl.Rectangle

	openCombo    string
	activeSlider string
}

// New returns an empty panel.
func New() *Panel {
	return &Panel{windows: make(map[string]*window)}
}

// LoadFont loads a TTF/OTF file for all widget text. Call after the window is open.
func (p *Panel) LoadFont(path string) error {
	font := rl.LoadFontEx(path, fontSize*2, nil, 0)
	if !rl.IsFontValid(font) {
		return fmt.Errorf("gui: load font %s", path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	p.font = font
	return nil
}

// print draws text with the loaded font, or raylib's default font when none is loaded.
func (p *Panel) print(text string, x, y float32) {
	if p.font.Texture.ID != 0 {
		rl.DrawTextEx(p.font, text, rl.NewVector2(x, y), fontSize, 1, textColor)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fontSize, textColor)
}

func (p *Panel) measure(text string) float32 {
	if p.font.Texture.ID != 0 {
		return rl.MeasureTextEx(p.font, text, fontSize, 1).X
	}
	return float32(rl.MeasureText(text, fontSize))
}

// NewFrame reads the pointer and clears last frame's draw list.
func (p *Panel) NewFrame() {
	p.ops = p.ops[:0]
	p.popups = p.popups[:0]
	p.nextX = windowGap
	p.cur = nil
	if p.Interactive != nil && !p.Interactive() {
		p.mouse = rl.NewVector2(-1, -1)
		p.clicked, p.down = false, false
		p.openCombo, p.activeSlider = "", ""
		return
	}
	p.mouse = rl.GetMousePosition()
	p.clicked = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	p.down = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	if !p.down {
		p.activeSlider = ""
	}
}

// Render draws the frame's windows, then popups and tooltips on top.
func (p *Panel) Render() {
	for _, op := range p.ops {
		op()
	}
	for _, op := range p.popups {
		op()
	}
}

func (p *Panel) hovered(r rl.Rectangle) bool {
	return rl.CheckCollisionPointRec(p.mouse, r)
}

// click consumes the frame's click if it landed in r.
func (p *Panel) click(r rl.Rectangle) bool {
	if p.clicked && p.hovered(r) {
		p.clicked = false
		return true
	}
	return false
}

func (p *Panel) row() rl.Rectangle {
	r := rl.NewRectangle(p.x, p.y, windowWidth-2*padding, lineHeight)
	p.y += lineHeight
	return r
}

func (p *Panel) drawText(text string, x, y float32) {
	p.ops = append(p.ops, func() {
		p.print(text, x, y+3)
	})
}

// Begin opens a window with a clickable title bar.
func (p *Panel) Begin(title string) bool {
	w, ok := p.windows[title]
	if !ok {
		w = &window{}
		p.windows[title] = w
	}
	p.cur = w
	p.curStart = len(p.ops)
	p.top = windowGap
	p.x = p.nextX + padding
	p.y = p.top

	bar := rl.NewRectangle(p.nextX, p.top, windowWidth, lineHeight)
	if p.click(bar) {
		w.collapsed = !w.collapsed
	}
	marker := "v "
	if w.collapsed {
		marker = "> "
	}
	label := marker + title
	p.ops = append(p.ops, func() {
		rl.DrawRectangleRec(bar, titleBarColor)
		p.print(label, bar.X+padding, bar.Y+3)
	})
	p.y += lineHeight + padding/2
	p.lastItem = bar
	return !w.collapsed
}

// End closes the current window and reserves space for the next one.
func (p *Panel) End() {
	if p.cur == nil {
		return
	}
	bg := rl.NewRectangle(p.nextX, p.top+lineHeight, windowWidth, p.y-p.top-lineHeight+padding/2)
	if !p.cur.collapsed {
		// background goes under the window's widgets but over the title bar
		at := p.curStart + 1
		p.ops = append(p.ops, nil)
		copy(p.ops[at+1:], p.ops[at:])
		p.ops[at] = func() { rl.DrawRectangleRec(bg, windowBgColor) }
	}
	p.nextX += windowWidth + windowGap
	p.cur = nil
}

// Text draws one formatted line.
func (p *Panel) Text(format string, args ...any) {
	r := p.row()
	p.drawText(fmt.Sprintf(format, args...), r.X, r.Y)
	p.lastItem = r
}

// TextWrapped draws text broken on spaces to fit the window width.
func (p *Panel) TextWrapped(text string) {
	start := p.y
	for _, para := range strings.Split(text, "\n") {
		for _, line := range wrap(para, windowWidth-2*padding, p.measure) {
			r := p.row()
			p.drawText(line, r.X, r.Y)
		}
	}
	p.lastItem = rl.NewRectangle(p.x, start, windowWidth-2*padding, p.y-start)
}

func wrap(text string, width float32, measure func(string) float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		next := line + " " + w
		if measure(next) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = next
	}
	return append(lines, line)
}

// Tooltip shows text next to the pointer while the previous item is hovered.
func (p *Panel) Tooltip(text string) {
	if !p.hovered(p.lastItem) {
		return
	}
	lines := strings.Split(text, "\n")
	var w float32
	for _, l := range lines {
		w = max(w, p.measure(l))
	}
	x, y := p.mouse.X+16, p.mouse.Y+16
	box := rl.NewRectangle(x, y, w+2*padding, float32(len(lines))*lineHeight+padding)
	p.popups = append(p.popups, func() {
		rl.DrawRectangleRec(box, tooltipBgColor)
		for i, l := range lines {
			p.print(l, x+padding, y+padding/2+float32(i)*lineHeight+3)
		}
	})
}

// Checkbox toggles v when its row is clicked.
func (p *Panel) Checkbox(label string, v *bool) bool {
	r := p.row()
	changed := p.click(r)
	if changed {
		*v = !*v
	}
	box := rl.NewRectangle(r.X, r.Y+(lineHeight-boxSize)/2, boxSize, boxSize)
	checked := *v
	hover := p.hovered(r)
	p.ops = append(p.ops, func() {
		c := widgetColor
		if hover {
			c = widgetHoverColor
		}
		rl.DrawRectangleRec(box, c)
		if checked {
			rl.DrawRectangleRec(rl.NewRectangle(box.X+3, box.Y+3, box.Width-6, box.Height-6), accentColor)
		}
	})
	p.drawText(label, r.X+boxSize+padding, r.Y)
	p.lastItem = r
	return changed
}

// Combo draws the selected item; clicking opens a list of items below it.
func (p *Panel) Combo(label string, current *int, items []string) bool {
	r := p.row()
	box := rl.NewRectangle(r.X, r.Y+1, comboWidth, lineHeight-2)
	id := fmt.Sprintf("%p/%s", p.cur, label)
	changed := false

	if p.openCombo == id {
		for i := range items {
			item := rl.NewRectangle(box.X, box.Y+float32(i+1)*lineHeight, comboWidth, lineHeight)
			if p.click(item) {
				if i != *current {
					*current = i
					changed = true
				}
				p.openCombo = ""
			}
		}
		if p.openCombo == id && p.clicked {
			// a click outside the list only closes it
			p.openCombo = ""
			p.clicked = false
		}
	}
	if p.click(box) {
		if p.openCombo == id {
			p.openCombo = ""
		} else {
			p.openCombo = id
		}
	}

	selected := ""
	if *current >= 0 && *current < len(items) {
		selected = items[*current]
	}
	hover := p.hovered(box)
	p.ops = append(p.ops, func() {
		c := widgetColor
		if hover {
			c = widgetHoverColor
		}
		rl.DrawRectangleRec(box, c)
		p.print(selected, box.X+padding, box.Y+3)
	})
	p.drawText(label, box.X+comboWidth+padding, r.Y)

	if p.openCombo == id {
		list := append([]string(nil), items...)
		cur := *current
		mouse := p.mouse
		p.popups = append(p.popups, func() {
			for i, it := range list {
				item := rl.NewRectangle(box.X, box.Y+float32(i+1)*lineHeight, comboWidth, lineHeight)
				c := widgetColor
				if i == cur || rl.CheckCollisionPointRec(mouse, item) {
					c = widgetHoverColor
				}
				rl.DrawRectangleRec(item, c)
				p.print(it, item.X+padding, item.Y+3)
			}
		})
	}
	p.lastItem = r
	return changed
}

// SliderFloat drags v between min and max while the left button is held on the bar.
func (p *Panel) SliderFloat(label string, v *float32, min, max float32) bool {
	r := p.row()
	bar := rl.NewRectangle(r.X, r.Y+lineHeight/2-3, sliderWidth, 6)
	hit := rl.NewRectangle(r.X, r.Y, sliderWidth, lineHeight)
	id := fmt.Sprintf("%p/%s", p.cur, label)
	if p.click(hit) {
		p.activeSlider = id
	}
	changed := false
	if p.activeSlider == id && p.down && max > min {
		t := (p.mouse.X - bar.X) / bar.Width
		t = rl.Clamp(t, 0, 1)
		nv := min + t*(max-min)
		if nv != *v {
			*v = nv
			changed = true
		}
	}
	t := float32(0)
	if max > min {
		t = rl.Clamp((*v-min)/(max-min), 0, 1)
	}
	text := fmt.Sprintf("%s: %.2f", label, *v)
	p.ops = append(p.ops, func() {
		rl.DrawRectangleRec(bar, widgetColor)
		rl.DrawRectangleRec(rl.NewRectangle(bar.X+t*bar.Width-4, r.Y+3, 8, lineHeight-6), accentColor)
	})
	p.drawText(text, r.X+sliderWidth+padding, r.Y)
	p.lastItem = r
	return changed
}

// Table draws values in rows of the given number of columns.
func (p *Panel) Table(id string, columns int, values []float32) {
	if columns <= 0 {
		return
	}
	start := p.y
	for i := 0; i < len(values); i += columns {
		r := p.row()
		for c := 0; c < columns && i+c < len(values); c++ {
			p.drawText(fmt.Sprintf("%8.3f", values[i+c]), r.X+float32(c)*cellWidth, r.Y)
		}
	}
	p.lastItem = rl.NewRectangle(p.x, start, windowWidth-2*padding, p.y-start)
}
