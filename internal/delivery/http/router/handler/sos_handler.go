package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SOSContact mirrors one entry of the broadcast contact list.
type SOSContact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// SOSRequest is the transport-level broadcast payload.
type SOSRequest struct {
	Contacts []SOSContact `json:"contacts"`
	Message  string       `json:"message" validate:"required"`
}

// SOSResponse is the broadcast success body.
type SOSResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
}

// SOSHandler holds dependencies for the SOS broadcast handler.
type SOSHandler struct {
	uc     usecase.SOSUsecase
	logger *slog.Logger
}

// NewSOSHandler is the constructor for SOSHandler, injected by Fx.
func NewSOSHandler(uc usecase.SOSUsecase, logger *slog.Logger) *SOSHandler {
	return &SOSHandler{
		uc:     uc,
		logger: logger,
	}
}

// Broadcast handles the SOS request and relays the alert to every contact.
func (h *SOSHandler) Broadcast(c echo.Context) error {
	var req SOSRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if len(req.Contacts) == 0 {
		return errors.WithStack(domainerrors.ErrNoContacts)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	contacts := make([]usecase.Contact, 0, len(req.Contacts))
	for _, contact := range req.Contacts {
		contacts = append(contacts, usecase.Contact{Name: contact.Name, Number: contact.Number})
	}

	output, err := h.uc.Broadcast(c.Request().Context(), &usecase.BroadcastInput{
		Contacts: contacts,
		Message:  req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, SOSResponse{
		Success: true,
		Sent:    output.Sent,
	})
}
