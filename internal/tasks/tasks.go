// Package tasks tracks daily, weekly, achievement and main quests for the
// household: progress, completion, one-time reward claims and periodic resets.
package tasks

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"kittyhaven/internal/clock"
)

type Type string

const (
	TypeDaily       Type = "daily"
	TypeWeekly      Type = "weekly"
	TypeAchievement Type = "achievement"
	TypeMain        Type = "main"
)

var (
	ErrUnknownTask  = errors.New("unknown task")
	ErrNotClaimable = errors.New("task reward is not claimable")
)

type RewardItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type Reward struct {
	Coins int          `json:"coins,omitempty"`
	Exp   float64      `json:"exp,omitempty"`
	Items []RewardItem `json:"items,omitempty"`
}

func (r Reward) ItemIDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		ids = append(ids, it.ItemID)
	}
	return ids
}

func (r Reward) String() string {
	s := fmt.Sprintf("%d coins", r.Coins)
	if r.Exp > 0 {
		s += fmt.Sprintf(", %.0f exp", r.Exp)
	}
	for _, it := range r.Items {
		s += fmt.Sprintf(", %s x%d", it.ItemID, it.Quantity)
	}
	return s
}

// Definition is the static part of a task. Requires lists tasks that must be
// completed before a main task accepts progress.
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Type        Type
	Max         int
	Reward      Reward
	Requires    []string
}

type Task struct {
	Definition
	Progress  int
	Completed bool
	Claimed   bool
}

func (t Task) Claimable() bool {
	return t.Completed && !t.Claimed
}

type Manager struct {
	order      []string
	tasks      map[string]*Task
	lastDaily  time.Time
	lastWeekly time.Time

	// OnComplete runs once when a task first reaches its maximum.
	OnComplete func(Task)
}

// NewManager builds a manager over defs, or over DefaultTasks when none are given.
func NewManager(defs ...Definition) *Manager {
	if len(defs) == 0 {
		defs = DefaultTasks()
	}
	m := &Manager{tasks: make(map[string]*Task, len(defs))}
	for _, d := range defs {
		if d.Max < 1 {
			d.Max = 1
		}
		if _, dup := m.tasks[d.ID]; !dup {
			m.order = append(m.order, d.ID)
		}
		m.tasks[d.ID] = &Task{Definition: d}
	}
	return m
}

func (m *Manager) Get(id string) (Task, bool) {
	t, ok := m.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

func (m *Manager) unlocked(t *Task) bool {
	if t.Type != TypeMain {
		return true
	}
	for _, req := range t.Requires {
		r, ok := m.tasks[req]
		if !ok || !r.Completed {
			return false
		}
	}
	return true
}

func (m *Manager) accepts(id string) (*Task, bool) {
	t, ok := m.tasks[id]
	if !ok || t.Completed || t.Claimed || !m.unlocked(t) {
		return nil, false
	}
	return t, true
}

func (m *Manager) setProgress(t *Task, progress int) bool {
	if progress > t.Max {
		progress = t.Max
	}
	if progress < 0 {
		progress = 0
	}
	t.Progress = progress
	if t.Progress < t.Max {
		return false
	}
	t.Completed = true
	if m.OnComplete != nil {
		m.OnComplete(*t)
	}
	return true
}

// Update adds amount to a task's progress. It reports whether this call
// completed the task.
func (m *Manager) Update(id string, amount int) bool {
	t, ok := m.accepts(id)
	if !ok || amount <= 0 {
		return false
	}
	return m.setProgress(t, t.Progress+amount)
}

// Advance raises progress to value for threshold tasks such as reaching a level.
// Progress never goes down.
func (m *Manager) Advance(id string, value int) bool {
	t, ok := m.accepts(id)
	if !ok || value <= t.Progress {
		return false
	}
	return m.setProgress(t, value)
}

// Peek returns the reward Claim would hand out without claiming it.
func (m *Manager) Peek(id string) (Reward, error) {
	t, ok := m.tasks[id]
	if !ok {
		return Reward{}, fmt.Errorf("%w: %s", ErrUnknownTask, id)
	}
	if !t.Claimable() {
		return Reward{}, fmt.Errorf("%w: %s", ErrNotClaimable, id)
	}
	return t.Reward, nil
}

// Claim marks a completed task claimed and returns its reward exactly once.
func (m *Manager) Claim(id string) (Reward, error) {
	r, err := m.Peek(id)
	if err != nil {
		return Reward{}, err
	}
	m.tasks[id].Claimed = true
	return r, nil
}

func (m *Manager) All() []Task {
	out := make([]Task, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.tasks[id])
	}
	return out
}

func (m *Manager) ByType(typ Type) []Task {
	var out []Task
	for _, t := range m.All() {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

func (m *Manager) Claimable() []Task {
	var out []Task
	for _, t := range m.All() {
		if t.Claimable() {
			out = append(out, t)
		}
	}
	return out
}

func (m *Manager) reset(typ Type) {
	for _, t := range m.tasks {
		if t.Type == typ {
			t.Progress = 0
			t.Completed = false
			t.Claimed = false
		}
	}
}

// ResetDaily clears daily tasks once per UTC day. It reports whether a reset happened.
func (m *Manager) ResetDaily(now time.Time) bool {
	day := clock.DayStart(now)
	if !m.lastDaily.Before(day) {
		return false
	}
	m.reset(TypeDaily)
	m.lastDaily = day
	return true
}

// ResetWeekly clears weekly tasks once per week starting Sunday 00:00 UTC.
func (m *Manager) ResetWeekly(now time.Time) bool {
	week := clock.WeekStart(now)
	if !m.lastWeekly.Before(week) {
		return false
	}
	m.reset(TypeWeekly)
	m.lastWeekly = week
	return true
}

type Progress struct {
	Progress int  `json:"progress"`
	Claimed  bool `json:"claimed,omitempty"`
}

type Snapshot struct {
	Tasks      map[string]Progress `json:"tasks"`
	LastDaily  time.Time           `json:"last_daily_reset"`
	LastWeekly time.Time           `json:"last_weekly_reset"`
}

func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{Tasks: make(map[string]Progress, len(m.tasks)), LastDaily: m.lastDaily, LastWeekly: m.lastWeekly}
	for id, t := range m.tasks {
		if t.Progress == 0 && !t.Claimed {
			continue
		}
		s.Tasks[id] = Progress{Progress: t.Progress, Claimed: t.Claimed}
	}
	return s
}

// Restore applies saved progress onto the current definitions. Ids no longer
// defined are ignored; new tasks keep their zero state. The completion hook
// does not fire.
func (m *Manager) Restore(s Snapshot) {
	m.lastDaily = s.LastDaily
	m.lastWeekly = s.LastWeekly
	ids := make([]string, 0, len(s.Tasks))
	for id := range s.Tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t, ok := m.tasks[id]
		if !ok {
			continue
		}
		p := s.Tasks[id]
		t.Progress = min(max(p.Progress, 0), t.Max)
		t.Completed = t.Progress >= t.Max
		t.Claimed = p.Claimed && t.Completed
	}
}
