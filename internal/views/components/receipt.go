package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ReceiptPanel shows the receipt in a read-only monospace grid so the price
// column lines up.
type ReceiptPanel struct {
	container *fyne.Container
	Grid      *widget.TextGrid
}

func NewReceiptPanel() *ReceiptPanel {
	grid := widget.NewTextGrid()
	scroll := container.NewScroll(grid)
	scroll.SetMinSize(fyne.NewSize(340, 260))

	return &ReceiptPanel{
		container: container.NewStack(widget.NewCard("Receipt", "", scroll)),
		Grid:      grid,
	}
}

func (rp *ReceiptPanel) GetContainer() *fyne.Container {
	return rp.container
}

func (rp *ReceiptPanel) SetText(text string) {
	rp.Grid.SetText(text)
}

func (rp *ReceiptPanel) Text() string {
	return rp.Grid.Text()
}
