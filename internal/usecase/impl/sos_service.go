package impl

import (
	"context"
	"log/slog"

	deliverycontext "beacon/internal/delivery/context"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sosService implements the SOSUsecase interface.
type sosService struct {
	sender service.SMSSender
	logger *slog.Logger
}

// SOSServiceParams holds dependencies for sosService, injected by Fx.
type SOSServiceParams struct {
	fx.In

	Sender service.SMSSender
	Logger *slog.Logger
}

// NewSOSService is the constructor for sosService.
func NewSOSService(params SOSServiceParams) usecase.SOSUsecase {
	return &sosService{
		sender: params.Sender,
		logger: params.Logger,
	}
}

func (srv *sosService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Broadcast fans the alert out to every contact in order. Contacts with an
// empty number are skipped without affecting the rest. All-or-nothing: the
// first provider failure aborts the broadcast, so a partial batch is still
// reported as a failure to the caller.
func (srv *sosService) Broadcast(ctx context.Context, input *usecase.BroadcastInput) (*usecase.BroadcastOutput, error) {
	if len(input.Contacts) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoContacts, "broadcast rejected")
	}

	srv.log(ctx).Info("Starting SOS broadcast", slog.Int("contacts", len(input.Contacts)))

	deliveries := make([]usecase.Delivery, 0, len(input.Contacts))
	for _, contact := range input.Contacts {
		if contact.Number == "" {
			srv.log(ctx).Debug("Skipping contact without a number", slog.String("name", contact.Name))

			continue
		}

		deliveryID, err := srv.sender.Send(ctx, contact.Number, input.Message)
		if err != nil {
			srv.log(ctx).Error("SOS delivery failed",
				slog.String("to", contact.Number),
				slog.Int("delivered", len(deliveries)),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(domainerrors.ErrSMSDeliveryFailed, "broadcast aborted")
		}

		deliveries = append(deliveries, usecase.Delivery{To: contact.Number, SID: deliveryID})
	}

	srv.log(ctx).Info("SOS broadcast completed", slog.Int("sent", len(deliveries)))

	return &usecase.BroadcastOutput{
		Sent:       len(deliveries),
		Deliveries: deliveries,
	}, nil
}
