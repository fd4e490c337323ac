package views

import (
	"pizza-order-form/internal/models"
	"pizza-order-form/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Pizza Order Form"

// MainView is the order form window. It forwards widget events to the
// registered handlers and renders whatever the controller pushes back.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	crustPanel    *components.CrustPanel
	sizePanel     *components.SizePanel
	toppingsPanel *components.ToppingsPanel
	receiptPanel  *components.ReceiptPanel
	toolbar       *components.Toolbar

	crustChangeHandler   func(models.Crust)
	sizeChangeHandler    func(models.Size)
	toppingChangeHandler func(int, bool)
	submitHandler        func()
	clearHandler         func()
	quitHandler          func()
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.crustPanel = components.NewCrustPanel()
	mv.sizePanel = components.NewSizePanel()
	mv.toppingsPanel = components.NewToppingsPanel()
	mv.receiptPanel = components.NewReceiptPanel()
	mv.toolbar = components.NewToolbar()
}

// buildLayout places crust on top, size left, toppings centre, receipt right
// and the buttons at the bottom.
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.crustPanel.GetContainer(),
		mv.toolbar.GetContainer(),
		mv.sizePanel.GetContainer(),
		mv.receiptPanel.GetContainer(),
		mv.toppingsPanel.GetContainer(),
	)

	mv.window.SetTitle(WindowTitle)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.crustPanel.SetChangeHandler(func(c models.Crust) {
		if mv.crustChangeHandler != nil {
			mv.crustChangeHandler(c)
		}
	})

	mv.sizePanel.SetChangeHandler(func(s models.Size) {
		if mv.sizeChangeHandler != nil {
			mv.sizeChangeHandler(s)
		}
	})

	mv.toppingsPanel.SetChangeHandler(func(index int, on bool) {
		if mv.toppingChangeHandler != nil {
			mv.toppingChangeHandler(index, on)
		}
	})

	mv.toolbar.SetOrderHandler(func() {
		if mv.submitHandler != nil {
			mv.submitHandler()
		}
	})

	mv.toolbar.SetClearHandler(func() {
		if mv.clearHandler != nil {
			mv.clearHandler()
		}
	})

	mv.toolbar.SetQuitHandler(func() {
		if mv.quitHandler != nil {
			mv.quitHandler()
		}
	})
}

// Event handler setters, called during application wiring.

func (mv *MainView) SetCrustChangeHandler(handler func(models.Crust)) {
	mv.crustChangeHandler = handler
}

func (mv *MainView) SetSizeChangeHandler(handler func(models.Size)) {
	mv.sizeChangeHandler = handler
}

func (mv *MainView) SetToppingChangeHandler(handler func(index int, selected bool)) {
	mv.toppingChangeHandler = handler
}

func (mv *MainView) SetSubmitHandler(handler func()) {
	mv.submitHandler = handler
}

func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

// RenderReceipt replaces the receipt text. An empty receipt blanks the panel.
func (mv *MainView) RenderReceipt(receipt models.Receipt) {
	mv.receiptPanel.SetText(receipt.String())
}

// RenderWarning shows a blocking information dialog.
func (mv *MainView) RenderWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// RenderSelection moves every selection widget to sel.
func (mv *MainView) RenderSelection(sel models.Selection) {
	mv.crustPanel.SetCrust(sel.Crust)
	mv.sizePanel.SetSize(sel.Size)
	mv.toppingsPanel.SetToppings(sel.Toppings)
}

func (mv *MainView) ConfirmQuit(title, message string, onResult func(confirmed bool)) {
	dialog.ShowConfirm(title, message, onResult, mv.window)
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) CrustPanel() *components.CrustPanel {
	return mv.crustPanel
}

func (mv *MainView) SizePanel() *components.SizePanel {
	return mv.sizePanel
}

func (mv *MainView) ToppingsPanel() *components.ToppingsPanel {
	return mv.toppingsPanel
}

func (mv *MainView) ReceiptPanel() *components.ReceiptPanel {
	return mv.receiptPanel
}

func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

// Show displays the window.
func (mv *MainView) Show() {
	mv.window.Show()
}
