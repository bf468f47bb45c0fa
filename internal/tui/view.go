package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kittyhaven/internal/engine"
	"kittyhaven/internal/pet"
	"kittyhaven/internal/tasks"
	"kittyhaven/internal/ui"
)

// The scene grid sits inside a bordered panel; sceneLeft and sceneTop are the
// screen offsets of its first cell.
const (
	sceneLeft = 2
	sceneTop  = headerLines + 1
	sceneTrim = 4
)

// sceneSize is the scene grid in terminal cells.
func (m boardModel) sceneSize() (cols, rows int) {
	cols, rows = 60, 20
	if m.width > 0 {
		cols = m.width - sidebarWidth - 2 - sceneTrim
	}
	if m.height > 0 {
		rows = m.height - headerLines - footerLines - 2
	}
	return max(cols, minCols), max(rows, minRows)
}

func (m boardModel) canvas() (w, h float64) {
	l := m.svc.Layout()
	return l.Width, l.Height
}

// toCanvas maps a screen cell to the center of its canvas area. ok is false
// outside the scene.
func (m boardModel) toCanvas(x, y int) (pet.Vec, bool) {
	cols, rows := m.sceneSize()
	col, row := x-sceneLeft, y-sceneTop
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return pet.Vec{}, false
	}
	w, h := m.canvas()
	return pet.Vec{
		X: (float64(col) + 0.5) / float64(cols) * w,
		Y: (float64(row) + 0.5) / float64(rows) * h,
	}, true
}

func (m boardModel) clampCanvas(x, y int) pet.Vec {
	cols, rows := m.sceneSize()
	x = min(max(x, sceneLeft), sceneLeft+cols-1)
	y = min(max(y, sceneTop), sceneTop+rows-1)
	p, _ := m.toCanvas(x, y)
	return p
}

// toCell maps a canvas point to the scene cell containing it.
func (m boardModel) toCell(p pet.Vec) (col, row int) {
	cols, rows := m.sceneSize()
	w, h := m.canvas()
	col = int(p.X / w * float64(cols))
	row = int(p.Y / h * float64(rows))
	return min(max(col, 0), cols-1), min(max(row, 0), rows-1)
}

// toScreen is the screen cell showing canvas point p.
func (m boardModel) toScreen(p pet.Vec) (x, y int) {
	col, row := m.toCell(p)
	return col + sceneLeft, row + sceneTop
}

func (m boardModel) View() string {
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n\nPress q to quit.\n"
	}
	if m.svc == nil {
		return fmt.Sprintf("%s Opening the cat house...\n", m.spinner.View())
	}
	pets, state := m.sess.frame()

	header := m.renderHeader(state)
	scene := m.renderScene(pets, state)
	sidebar := m.renderSidebar(pets, state)
	body := lipgloss.JoinHorizontal(lipgloss.Top, scene, "  ", sidebar)
	return header + "\n" + body + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader(st engine.UIState) string {
	signed := "not signed in"
	if st.SignedToday {
		signed = "signed in"
	}
	line := fmt.Sprintf("%s %d   %s streak %d (%s)", ui.IconCoin, st.Coins, ui.IconCalendar, st.Streak, signed)
	if st.Pending > 0 {
		line += fmt.Sprintf("   pending %d", st.Pending)
	}
	if st.Claimable > 0 {
		line += "   " + ui.Good.Render(fmt.Sprintf("%s %d to claim", ui.IconGift, st.Claimable))
	}
	return ui.Title.Render(ui.IconCat+" Kittyhaven") + "\n" + line
}

type grid [][]string

func newGrid(cols, rows int) grid {
	g := make(grid, rows)
	for r := range g {
		g[r] = make([]string, cols)
		for c := range g[r] {
			g[r][c] = " "
		}
	}
	return g
}

// put writes text starting at col, clipped to the row.
func (g grid) put(row, col int, text string, style lipgloss.Style) {
	if row < 0 || row >= len(g) {
		return
	}
	for i, r := range []rune(text) {
		c := col + i
		if c < 0 || c >= len(g[row]) {
			continue
		}
		g[row][c] = style.Render(string(r))
	}
}

func (g grid) String() string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func sprite(v pet.View) string {
	switch {
	case v.State == pet.StateSleeping:
		return "(-.-)z"
	case v.State == pet.StateDragging:
		return "\\(o.o)/"
	case v.Display == pet.DisplayEating:
		return "(=^o^=)"
	case v.Display == pet.DisplayLevelUp:
		return "*(^.^)*"
	case v.Direction < 0:
		return "<(=^.^)"
	default:
		return "(^.^=)>"
	}
}

func (m boardModel) renderScene(pets []pet.View, st engine.UIState) string {
	cols, rows := m.sceneSize()
	g := newGrid(cols, rows)

	for _, b := range st.Buttons {
		style := ui.Button
		if b.ID == st.Pressed {
			style = ui.Pressed
		}
		label := "[" + b.Label + "]"
		col, row := m.toCell(b.Rect.Center())
		g.put(row, col-len(label)/2, label, style)
	}

	for i, v := range pets {
		col, row := m.toCell(v.Position)
		art := sprite(v)
		g.put(row, col-len([]rune(art))/2, art, ui.MoodStyle(v.Mood))
		name := v.Name
		if i == st.Selected {
			name = "*" + name + "*"
		}
		g.put(row+1, col-len([]rune(name))/2, name, ui.Muted)
		if v.StatusVisible {
			bubble := fmt.Sprintf("<3 %.0f", v.Happiness)
			g.put(row-1, col-len(bubble)/2, bubble, ui.Key)
		}
	}
	return ui.Panel.Render(g.String())
}

func (m boardModel) renderSidebar(pets []pet.View, st engine.UIState) string {
	var out []string
	if st.Selected >= 0 && st.Selected < len(pets) {
		out = append(out, renderPet(pets[st.Selected]))
	}
	if d := m.sess.dialog(); d != nil {
		out = append(out, renderDialog(d))
	} else {
		switch st.Panel {
		case engine.PanelBag:
			out = append(out, m.renderBag())
		case engine.PanelTasks:
			out = append(out, m.renderTasks())
		}
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(out, "\n"))
}

func renderPet(v pet.View) string {
	lines := []string{
		ui.PanelTitle.Render(fmt.Sprintf("%s %s  lv %d", ui.IconCat, v.Name, v.Level)),
		ui.Muted.Render(fmt.Sprintf("%s %s, %s", v.Color, v.Pattern, v.Personality)),
		ui.LabelValue("Mood", ui.MoodText(v.Mood)),
		"Food   " + ui.Meter(v.Satiety, pet.MaxVital, 16),
		"Joy    " + ui.Meter(v.Happiness, pet.MaxVital, 16),
		"Energy " + ui.Meter(v.Energy, pet.MaxVital, 16),
		"Exp    " + ui.Meter(v.Exp, v.MaxExp, 16),
	}
	if v.Display == pet.DisplayLevelUp {
		lines = append(lines, ui.BadgeLevelUp.Render("LEVEL UP"))
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderBag() string {
	lines := []string{ui.PanelTitle.Render(ui.IconBag + " Bag")}
	entries := m.svc.Inventory()
	if len(entries) == 0 {
		lines = append(lines, ui.Muted.Render("(empty)"))
	}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s x%d", ui.ItemIcon(e.Type), e.Name, e.Quantity))
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderTasks() string {
	lines := []string{ui.PanelTitle.Render(ui.IconScroll + " Tasks")}
	claim := m.svc.Claimable()
	if len(claim) == 0 {
		lines = append(lines, ui.Muted.Render("nothing to claim"))
	}
	for i, t := range claim {
		row := fmt.Sprintf("%s %s  %s", ui.IconGift, t.Name, t.Reward)
		if i == m.taskCursor {
			row = ui.SelectedRow.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	for _, t := range m.svc.Tasks() {
		if t.Completed {
			continue
		}
		if t.Type != tasks.TypeDaily && t.Type != tasks.TypeWeekly {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %d/%d", t.Name, t.Progress, t.Max))
	}
	return strings.Join(lines, "\n")
}

func renderDialog(d *dialog) string {
	lines := []string{ui.PanelTitle.Render(d.title), ui.Muted.Render(d.body)}
	for i, o := range d.options {
		if i == d.cursor {
			lines = append(lines, ui.SelectedRow.Render("> "+o))
			continue
		}
		lines = append(lines, "  "+o)
	}
	lines = append(lines, ui.Muted.Render("enter choose, esc close"))
	return strings.Join(lines, "\n")
}

func (m boardModel) renderFooter() string {
	var lines []string
	toasts := m.sess.recentToasts()
	if len(toasts) > 0 {
		t := toasts[len(toasts)-1]
		lines = append(lines, toastLine(t))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, ui.Muted.Render("1-9/tab select  p pet  f feed  y play  t train  s shop  b bag  k tasks"))
	lines = append(lines, ui.Muted.Render("i sign in  c collect  a adopt  enter claim  q quit"))
	return strings.Join(lines, "\n")
}

func toastLine(t toast) string {
	switch t.kind {
	case engine.KindSuccess:
		return ui.Good.Render(ui.IconDone + " " + t.msg)
	case engine.KindWarning:
		return ui.Warn.Render(ui.IconWarn + " " + t.msg)
	case engine.KindError:
		return ui.Bad.Render(ui.IconError + " " + t.msg)
	default:
		return ui.IconInfo + " " + t.msg
	}
}
