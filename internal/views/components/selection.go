package components

import (
	"pizza-order-form/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CrustPanel is the "Crust Type" group. At most one crust can be selected
// and the group may also be empty.
type CrustPanel struct {
	container *fyne.Container
	Radio     *widget.RadioGroup

	changeHandler func(models.Crust)
}

func NewCrustPanel() *CrustPanel {
	labels := make([]string, 0, len(models.Crusts()))
	for _, c := range models.Crusts() {
		labels = append(labels, c.String())
	}

	p := &CrustPanel{}
	p.Radio = widget.NewRadioGroup(labels, p.onSelected)
	p.Radio.Horizontal = true
	p.Radio.Required = false

	p.container = container.NewStack(widget.NewCard("Crust Type", "", p.Radio))
	return p
}

func (p *CrustPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *CrustPanel) SetChangeHandler(handler func(models.Crust)) {
	p.changeHandler = handler
}

// SetCrust updates the radio group; CrustNone clears it.
func (p *CrustPanel) SetCrust(c models.Crust) {
	p.Radio.SetSelected(c.String())
}

func (p *CrustPanel) onSelected(label string) {
	crust, err := models.ParseCrust(label)
	if err != nil {
		return
	}
	if p.changeHandler != nil {
		p.changeHandler(crust)
	}
}

// SizePanel is the "Pizza Size" drop-down.
type SizePanel struct {
	container *fyne.Container
	Select    *widget.Select

	changeHandler func(models.Size)
}

func NewSizePanel() *SizePanel {
	labels := make([]string, 0, len(models.Sizes()))
	for _, s := range models.Sizes() {
		labels = append(labels, s.String())
	}

	p := &SizePanel{}
	p.Select = widget.NewSelect(labels, p.onSelected)
	p.Select.SetSelected(models.DefaultSize.String())

	p.container = container.NewStack(widget.NewCard("Pizza Size", "", p.Select))
	return p
}

func (p *SizePanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *SizePanel) SetChangeHandler(handler func(models.Size)) {
	p.changeHandler = handler
}

func (p *SizePanel) SetSize(s models.Size) {
	p.Select.SetSelected(s.String())
}

func (p *SizePanel) onSelected(label string) {
	size, err := models.ParseSize(label)
	if err != nil {
		return
	}
	if p.changeHandler != nil {
		p.changeHandler(size)
	}
}

// ToppingsPanel is the "Toppings" group of independent check boxes.
type ToppingsPanel struct {
	container *fyne.Container
	Checks    [models.ToppingCount]*widget.Check

	changeHandler func(index int, selected bool)
}

func NewToppingsPanel() *ToppingsPanel {
	p := &ToppingsPanel{}

	grid := container.NewGridWithColumns(2)
	for i := range p.Checks {
		index := i
		p.Checks[i] = widget.NewCheck(models.ToppingLabel(i), func(on bool) {
			p.onChanged(index, on)
		})
		grid.Add(p.Checks[i])
	}

	p.container = container.NewStack(widget.NewCard("Toppings", "", grid))
	return p
}

func (p *ToppingsPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *ToppingsPanel) SetChangeHandler(handler func(index int, selected bool)) {
	p.changeHandler = handler
}

func (p *ToppingsPanel) SetToppings(t models.Toppings) {
	for i, on := range t {
		p.Checks[i].SetChecked(on)
	}
}

func (p *ToppingsPanel) onChanged(index int, on bool) {
	if p.changeHandler != nil {
		p.changeHandler(index, on)
	}
}
