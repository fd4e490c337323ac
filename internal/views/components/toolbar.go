package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the Order, Clear and Quit buttons.
type Toolbar struct {
	container   *fyne.Container
	OrderButton *widget.Button
	ClearButton *widget.Button
	QuitButton  *widget.Button

	orderHandler func()
	clearHandler func()
	quitHandler  func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.OrderButton = widget.NewButton("Order", t.onOrder)
	t.OrderButton.Importance = widget.HighImportance

	t.ClearButton = widget.NewButton("Clear", t.onClear)
	t.QuitButton = widget.NewButton("Quit", t.onQuit)
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewCenter(
		container.NewHBox(t.OrderButton, t.ClearButton, t.QuitButton),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetOrderHandler(handler func()) {
	t.orderHandler = handler
}

func (t *Toolbar) SetClearHandler(handler func()) {
	t.clearHandler = handler
}

func (t *Toolbar) SetQuitHandler(handler func()) {
	t.quitHandler = handler
}

func (t *Toolbar) onOrder() {
	if t.orderHandler != nil {
		t.orderHandler()
	}
}

func (t *Toolbar) onClear() {
	if t.clearHandler != nil {
		t.clearHandler()
	}
}

func (t *Toolbar) onQuit() {
	if t.quitHandler != nil {
		t.quitHandler()
	}
}
