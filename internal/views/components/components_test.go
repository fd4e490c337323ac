package components

import (
	"testing"

	"pizza-order-form/internal/models"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestCrustPanelReportsSelection(t *testing.T) {
	test.NewTempApp(t)
	p := NewCrustPanel()

	var got []models.Crust
	p.SetChangeHandler(func(c models.Crust) { got = append(got, c) })

	assert.Equal(t, []string{"Thin", "Regular", "Deep-dish"}, p.Radio.Options)
	assert.Equal(t, "", p.Radio.Selected)

	p.Radio.SetSelected("Deep-dish")
	p.Radio.SetSelected("Thin")
	p.SetCrust(models.CrustNone)

	assert.Equal(t, []models.Crust{models.CrustDeepDish, models.CrustThin, models.CrustNone}, got)
	assert.Equal(t, "", p.Radio.Selected)
}

func TestSizePanelDefaultsToSmall(t *testing.T) {
	test.NewTempApp(t)
	p := NewSizePanel()

	var got []models.Size
	p.SetChangeHandler(func(s models.Size) { got = append(got, s) })

	assert.Equal(t, []string{"Small", "Medium", "Large", "Super"}, p.Select.Options)
	assert.Equal(t, "Small", p.Select.Selected)

	p.Select.SetSelected("Super")
	assert.Equal(t, []models.Size{models.SizeSuper}, got)

	p.SetSize(models.SizeSmall)
	assert.Equal(t, "Small", p.Select.Selected)
}

func TestToppingsPanelTogglesByIndex(t *testing.T) {
	test.NewTempApp(t)
	p := NewToppingsPanel()

	type change struct {
		index int
		on    bool
	}
	var got []change
	p.SetChangeHandler(func(i int, on bool) { got = append(got, change{i, on}) })

	for i, c := range p.Checks {
		assert.Equal(t, models.ToppingLabel(i), c.Text)
	}

	test.Tap(p.Checks[2])
	test.Tap(p.Checks[5])
	test.Tap(p.Checks[2])

	assert.Equal(t, []change{{2, true}, {5, true}, {2, false}}, got)

	p.SetToppings(models.Toppings{})
	for _, c := range p.Checks {
		assert.False(t, c.Checked)
	}
}

func TestReceiptPanelText(t *testing.T) {
	test.NewTempApp(t)
	p := NewReceiptPanel()

	assert.Equal(t, "", p.Text())

	p.SetText("line one\nline two")
	assert.Equal(t, "line one\nline two", p.Text())

	p.SetText("")
	assert.Equal(t, "", p.Text())
}

func TestToolbarDispatchesButtons(t *testing.T) {
	test.NewTempApp(t)
	tb := NewToolbar()

	var pressed []string
	tb.SetOrderHandler(func() { pressed = append(pressed, "order") })
	tb.SetClearHandler(func() { pressed = append(pressed, "clear") })
	tb.SetQuitHandler(func() { pressed = append(pressed, "quit") })

	test.Tap(tb.OrderButton)
	test.Tap(tb.ClearButton)
	test.Tap(tb.QuitButton)

	assert.Equal(t, []string{"order", "clear", "quit"}, pressed)
	assert.Equal(t, "Order", tb.OrderButton.Text)
}
