package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kittyhaven/internal/engine"
	"kittyhaven/internal/pet"
)

const (
	tickInterval = 100 * time.Millisecond
	headerLines  = 2
	footerLines  = 3
	sidebarWidth = 36
	minCols      = 30
	minRows      = 12
)

type boardModel struct {
	ctx     context.Context
	open    Opener
	svc     *engine.Service
	cleanup func()
	sess    *session

	width  int
	height int

	spinner    spinner.Model
	taskCursor int
	loading    bool
	err        error
}

type loadedMsg struct {
	svc     *engine.Service
	cleanup func()
	err     error
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, open Opener) boardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return boardModel{
		ctx:     ctx,
		open:    open,
		sess:    &session{},
		spinner: s,
		loading: true,
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.openCmd(), m.spinner.Tick)
}

func (m boardModel) openCmd() tea.Cmd {
	return func() tea.Msg {
		svc, cleanup, err := m.open(m.ctx, Hooks{Notifier: m.sess, Confirmer: m.sess, Renderer: m.sess})
		return loadedMsg{svc: svc, cleanup: cleanup, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.svc = msg.svc
		m.cleanup = msg.cleanup
		m.frame()
		return m, tick()
	case tickMsg:
		if m.svc == nil {
			return m, nil
		}
		m.frame()
		return m, tick()
	case tea.MouseMsg:
		if m.svc == nil || m.sess.dialog() != nil {
			return m, nil
		}
		m.mouse(msg)
		m.frame()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.svc == nil {
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		if d := m.sess.dialog(); d != nil {
			m.dialogKey(d, msg.String())
			m.frame()
			return m, nil
		}
		cmd := m.key(msg.String())
		m.frame()
		return m, cmd
	}
	return m, nil
}

func (m boardModel) frame() {
	// Failures are reported through the notifier.
	_ = m.svc.Frame(m.ctx)
}

func (m boardModel) mouse(msg tea.MouseMsg) {
	p, ok := m.toCanvas(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if ok && msg.Button == tea.MouseButtonLeft {
			m.svc.PointerDown(p)
		}
	case tea.MouseActionMotion:
		if ok {
			m.svc.PointerMove(p)
		}
	case tea.MouseActionRelease:
		if !ok {
			p = m.clampCanvas(msg.X, msg.Y)
		}
		_ = m.svc.PointerUp(m.ctx, p)
	}
}

func (m *boardModel) key(k string) tea.Cmd {
	ctx := m.ctx
	sel := m.svc.Selected()
	switch k {
	case "q":
		return tea.Quit
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		_ = m.svc.Select(ctx, int(k[0]-'1'))
	case "tab":
		if n := len(m.svc.Pets()); n > 0 {
			_ = m.svc.Select(ctx, (sel+1)%n)
		}
	case "p":
		_, _ = m.svc.Pet(ctx, sel)
	case "f":
		_, _ = m.svc.Feed(ctx, sel, "")
	case "y":
		_, _ = m.svc.Play(ctx, sel, "")
	case "t":
		m.sess.setDialog(m.trainDialog())
	case "s":
		_ = m.svc.Press(ctx, engine.ButtonShop)
	case "b":
		_ = m.svc.Press(ctx, engine.ButtonBag)
	case "k":
		m.taskCursor = 0
		_ = m.svc.Press(ctx, engine.ButtonTasks)
	case "i":
		_ = m.svc.Press(ctx, engine.ButtonSignIn)
	case "c":
		_ = m.svc.Press(ctx, engine.ButtonCollect)
	case "a":
		_, _ = m.svc.Adopt(ctx, engine.AdoptInput{})
	case "esc":
		m.svc.SetPanel(engine.PanelNone)
	case "up":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case "down":
		if m.taskCursor < len(m.svc.Claimable())-1 {
			m.taskCursor++
		}
	case "enter":
		claim := m.svc.Claimable()
		if m.svc.Panel() != engine.PanelTasks || len(claim) == 0 {
			return nil
		}
		if m.taskCursor >= len(claim) {
			m.taskCursor = len(claim) - 1
		}
		_, _ = m.svc.ClaimTask(ctx, claim[m.taskCursor].ID)
		if m.taskCursor > 0 && m.taskCursor >= len(m.svc.Claimable()) {
			m.taskCursor--
		}
	}
	return nil
}

func (m boardModel) trainDialog() *dialog {
	d := &dialog{kind: dialogTrain, title: "Train", body: "Pick a skill to train"}
	views := m.svc.Pets()
	sel := m.svc.Selected()
	for _, name := range pet.SkillNames {
		label := string(name)
		if sel >= 0 && sel < len(views) {
			sk := views[sel].Skills[name]
			label = fmt.Sprintf("%s (lv %d)", name, sk.Level)
		}
		d.options = append(d.options, label)
	}
	return d
}

func (m boardModel) dialogKey(d *dialog, k string) {
	switch k {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.options)-1 {
			d.cursor++
		}
	case "esc", "q":
		m.sess.setDialog(nil)
	case "enter":
		m.sess.setDialog(nil)
		m.choose(d)
	}
}

func (m boardModel) choose(d *dialog) {
	switch d.kind {
	case dialogShop:
		items := m.svc.ShopItems()
		if d.cursor < len(items) {
			_ = m.svc.Buy(m.ctx, items[d.cursor].ID, 1)
		}
	case dialogTrain:
		if d.cursor < len(pet.SkillNames) {
			_, _ = m.svc.Train(m.ctx, m.svc.Selected(), pet.SkillNames[d.cursor])
		}
	}
}
