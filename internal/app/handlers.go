package app

import (
	"pizza-order-form/internal/controllers"
	"pizza-order-form/internal/logger"
	"pizza-order-form/internal/models"
)

// Handlers adapts view callbacks to controller operations.
type Handlers struct {
	controller *controllers.OrderController
	logger     logger.Logger
}

func NewHandlers(controller *controllers.OrderController, log logger.Logger) *Handlers {
	return &Handlers{
		controller: controller,
		logger:     log,
	}
}

func (h *Handlers) HandleCrustChange(crust models.Crust) {
	h.controller.SetCrust(crust)
}

func (h *Handlers) HandleSizeChange(size models.Size) {
	h.controller.SetSize(size)
}

func (h *Handlers) HandleToppingChange(index int, selected bool) {
	if err := h.controller.SetTopping(index, selected); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"index": index,
		})
	}
}

func (h *Handlers) HandleSubmit() {
	h.controller.Submit()
}

func (h *Handlers) HandleClear() {
	h.controller.Clear()
}

func (h *Handlers) HandleQuit() {
	h.controller.Quit()
}

// HandleOrderEvent records controller events at debug level.
func (h *Handlers) HandleOrderEvent(event controllers.Event) {
	fields := map[string]interface{}{
		"event": event.Type,
	}
	if event.OrderID != "" {
		fields["order_id"] = event.OrderID
	}
	for k, v := range event.Data {
		fields[k] = v
	}
	h.logger.Debug("Handlers", "order event", fields)
}
