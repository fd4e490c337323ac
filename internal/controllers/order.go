package controllers

import (
	"fmt"
	"time"

	"pizza-order-form/internal/logger"
	"pizza-order-form/internal/models"
	"pizza-order-form/internal/services"

	"github.com/google/uuid"
)

const (
	IncompleteOrderTitle   = "Incomplete Order"
	IncompleteOrderMessage = "Please select crust, size, and at least one topping."
	QuitTitle              = "Confirm Quit"
	QuitMessage            = "Are you sure you want to quit?"
)

const (
	EventOrderSubmitted = "order_submitted"
	EventOrderCleared   = "order_cleared"
	EventQuitConfirmed  = "quit_confirmed"
	EventQuitDeclined   = "quit_declined"
)

// OrderView is the presentation sink the controller drives.
type OrderView interface {
	RenderReceipt(receipt models.Receipt)
	RenderWarning(title, message string)
	RenderSelection(sel models.Selection)
	// ConfirmQuit asks a yes/no question and reports the answer through
	// onResult. Dismissing the prompt counts as no.
	ConfirmQuit(title, message string, onResult func(confirmed bool))
}

// Exiter terminates the process.
type Exiter interface {
	Exit(code int)
}

// Event describes something the controller did.
type Event struct {
	Type      string
	OrderID   string
	Timestamp time.Time
	Data      map[string]interface{}
}

// EventHandler receives controller events synchronously.
type EventHandler func(event Event)

// FormState is a snapshot of everything the form shows.
type FormState struct {
	Selection models.Selection
	Receipt   string
}

// OrderController owns the order form state. All methods are expected to be
// called from the UI event loop.
type OrderController struct {
	pricing *services.PricingService
	logger  logger.Logger
	exiter  Exiter
	view    OrderView

	selection models.Selection
	receipt   models.Receipt
	submitted int

	eventHandlers map[string][]EventHandler
}

func NewOrderController(pricing *services.PricingService, log logger.Logger, exiter Exiter) *OrderController {
	return &OrderController{
		pricing:       pricing,
		logger:        log,
		exiter:        exiter,
		selection:     models.NewSelection(),
		eventHandlers: make(map[string][]EventHandler),
	}
}

// SetView attaches the presentation sink and pushes the current state to it.
func (oc *OrderController) SetView(view OrderView) {
	oc.view = view
	if view != nil {
		view.RenderSelection(oc.selection)
		view.RenderReceipt(oc.receipt)
	}
}

// Subscribe registers handler for events of the given type.
func (oc *OrderController) Subscribe(eventType string, handler EventHandler) {
	oc.eventHandlers[eventType] = append(oc.eventHandlers[eventType], handler)
}

func (oc *OrderController) SetCrust(c models.Crust) {
	oc.selection.Crust = c
}

func (oc *OrderController) SetSize(s models.Size) {
	oc.selection.Size = s
}

// SetTopping toggles the topping at index (0-based).
func (oc *OrderController) SetTopping(index int, selected bool) error {
	if index < 0 || index >= models.ToppingCount {
		return fmt.Errorf("topping index %d out of range [0,%d)", index, models.ToppingCount)
	}
	oc.selection.Toppings[index] = selected
	return nil
}

func (oc *OrderController) Selection() models.Selection {
	return oc.selection
}

func (oc *OrderController) Receipt() models.Receipt {
	return oc.receipt
}

func (oc *OrderController) State() FormState {
	return FormState{Selection: oc.selection, Receipt: oc.receipt.String()}
}

// Submit prices the current selection and renders its receipt. An incomplete
// selection leaves all state untouched and shows a warning instead.
func (oc *OrderController) Submit() {
	quote, receipt, err := oc.pricing.Receipt(oc.selection)
	if err != nil {
		if oc.view != nil {
			oc.view.RenderWarning(IncompleteOrderTitle, IncompleteOrderMessage)
		}
		return
	}

	oc.receipt = receipt
	oc.submitted++
	orderID := uuid.NewString()

	oc.logger.Info("OrderController", "order submitted", map[string]interface{}{
		"order_id": orderID,
		"crust":    quote.Selection.Crust.String(),
		"size":     quote.Selection.Size.String(),
		"toppings": quote.Selection.Toppings.Count(),
		"total":    quote.Total,
	})

	if oc.view != nil {
		oc.view.RenderReceipt(receipt)
	}

	oc.emitEvent(Event{
		Type:    EventOrderSubmitted,
		OrderID: orderID,
		Data: map[string]interface{}{
			"sub_total": quote.SubTotal,
			"tax":       quote.Tax,
			"total":     quote.Total,
		},
	})
}

// Clear restores the startup state. It is idempotent.
func (oc *OrderController) Clear() {
	oc.selection = models.NewSelection()
	oc.receipt = models.Receipt{}

	oc.logger.Debug("OrderController", "form cleared", nil)

	if oc.view != nil {
		oc.view.RenderSelection(oc.selection)
		oc.view.RenderReceipt(oc.receipt)
	}

	oc.emitEvent(Event{Type: EventOrderCleared})
}

// Quit asks for confirmation and exits with status 0 on yes.
func (oc *OrderController) Quit() {
	if oc.view == nil {
		return
	}

	oc.view.ConfirmQuit(QuitTitle, QuitMessage, func(confirmed bool) {
		if !confirmed {
			oc.emitEvent(Event{Type: EventQuitDeclined})
			return
		}

		oc.logger.Info("OrderController", "quit confirmed", nil)
		oc.emitEvent(Event{Type: EventQuitConfirmed})
		oc.exiter.Exit(0)
	})
}

// Shutdown logs a session summary.
func (oc *OrderController) Shutdown() {
	oc.logger.Info("OrderController", "session ended", map[string]interface{}{
		"orders_submitted": oc.submitted,
	})
}

func (oc *OrderController) emitEvent(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for _, handler := range oc.eventHandlers[event.Type] {
		handler(event)
	}
}
