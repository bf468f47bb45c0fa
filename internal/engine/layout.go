package engine

import "kittyhaven/internal/pet"

type ButtonID string

const (
	ButtonNone    ButtonID = ""
	ButtonShop    ButtonID = "shop"
	ButtonFeed    ButtonID = "feed"
	ButtonBag     ButtonID = "bag"
	ButtonTasks   ButtonID = "tasks"
	ButtonSignIn  ButtonID = "signin"
	ButtonCollect ButtonID = "collect"
)

var buttonOrder = []struct {
	id    ButtonID
	label string
}{
	{ButtonShop, "Shop"},
	{ButtonFeed, "Feed"},
	{ButtonBag, "Bag"},
	{ButtonTasks, "Tasks"},
	{ButtonSignIn, "Sign in"},
	{ButtonCollect, "Collect"},
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p pet.Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Center() pet.Vec {
	return pet.Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

type Button struct {
	ID    ButtonID
	Label string
	Rect  Rect
}

// Layout places the action buttons in one row across the bottom quarter of the canvas.
type Layout struct {
	Width, Height float64
	Buttons       []Button
}

func NewLayout(width, height float64) Layout {
	l := Layout{Width: width, Height: height}
	n := float64(len(buttonOrder))
	gap := width * 0.02
	bw := (width - gap*(n+1)) / n
	bh := height * 0.25 * 0.4
	y := height*0.75 + (height*0.25-bh)/2
	for i, b := range buttonOrder {
		l.Buttons = append(l.Buttons, Button{
			ID:    b.id,
			Label: b.label,
			Rect:  Rect{X: gap + float64(i)*(bw+gap), Y: y, W: bw, H: bh},
		})
	}
	return l
}

// ButtonAt returns the button containing p, or ButtonNone.
func (l Layout) ButtonAt(p pet.Vec) ButtonID {
	for _, b := range l.Buttons {
		if b.Rect.Contains(p) {
			return b.ID
		}
	}
	return ButtonNone
}

func (l Layout) Button(id ButtonID) (Button, bool) {
	for _, b := range l.Buttons {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}
