package dispatcher

import (
	"context"
	"fmt"
	"log/slog"

	"foodbot/internal/core/application/usecases/commands"
	"foodbot/internal/core/application/usecases/queries"
	"foodbot/internal/core/domain/model/intent"
	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/services"
	"foodbot/internal/core/ports"

	"github.com/moby/locker"
)

const msgClosed = "I'm sorry, but I'm currently not available. Here are our store hours: %s."

type (
	// AddToOrderHandler handles the add intent.
	AddToOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AddToOrderCommand) (string, error)
	}

	// RemoveFromOrderHandler handles the remove intent.
	RemoveFromOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveFromOrderCommand) (string, error)
	}

	// CompleteOrderHandler handles the complete intent.
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (string, error)
	}

	// TrackOrderHandler handles the track intent.
	TrackOrderHandler interface {
		Handle(ctx context.Context, query queries.TrackOrderQuery) (string, error)
	}
)

// Handlers groups the use cases a Dispatcher routes to.
type Handlers struct {
	AddToOrder      AddToOrderHandler
	RemoveFromOrder RemoveFromOrderHandler
	CompleteOrder   CompleteOrderHandler
	TrackOrder      TrackOrderHandler
}

// Dispatcher routes classified turns to the order use cases.
//
// Turns outside business hours get the closed reply whatever their intent.
// Otherwise the intent display name selects the handler; an unknown name is
// an *intent.UnrecognizedIntentError. Turns that touch a session's
// in-progress order run one at a time per session.
type Dispatcher struct {
	hours    services.BusinessHours
	clock    ports.Clock
	handlers Handlers
	locks    *locker.Locker
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher gated by hours as seen through clock.
func NewDispatcher(
	hours services.BusinessHours,
	clock ports.Clock,
	handlers Handlers,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		hours:    hours,
		clock:    clock,
		handlers: handlers,
		locks:    locker.New(),
		logger:   logger.With("component", "dispatcher"),
	}
}

// Dispatch answers one turn.
//
// Returned errors are ValueIsRequired or ValueIsInvalid errors from errs for
// malformed parameters, *intent.UnrecognizedIntentError for unknown intents,
// and whatever a handler fails with otherwise.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Fulfillment, error) {
	if !d.hours.IsOpen(d.clock.Now()) {
		d.logger.DebugContext(ctx, "Shop is closed", "intent", req.Intent)
		return Text(fmt.Sprintf(msgClosed, d.hours)), nil
	}

	it, err := intent.Parse(req.Intent)
	if err != nil {
		return Fulfillment{}, err
	}

	var reply string
	switch it {
	case intent.Welcome:
		return Empty(), nil
	case intent.TrackOrder:
		reply, err = d.trackOrder(ctx, req)
	case intent.AddToOrder, intent.RemoveFromOrder, intent.CompleteOrder:
		reply, err = d.withSession(ctx, it, req)
	default:
		return Fulfillment{}, &intent.UnrecognizedIntentError{DisplayName: req.Intent}
	}
	if err != nil {
		return Fulfillment{}, err
	}

	return Text(reply), nil
}

func (d *Dispatcher) withSession(ctx context.Context, it intent.Intent, req Request) (string, error) {
	if err := req.SessionID.Validate(); err != nil {
		return "", err
	}

	key := req.SessionID.String()
	d.locks.Lock(key)
	defer func() { _ = d.locks.Unlock(key) }()

	switch it {
	case intent.AddToOrder:
		return d.addToOrder(ctx, req)
	case intent.RemoveFromOrder:
		return d.removeFromOrder(ctx, req)
	default:
		return d.completeOrder(ctx, req.SessionID)
	}
}

func (d *Dispatcher) addToOrder(ctx context.Context, req Request) (string, error) {
	names, err := req.Parameters.Strings(ParamFoodItems)
	if err != nil {
		return "", err
	}
	quantities, err := req.Parameters.Numbers(ParamNumber)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewAddToOrderCommand(
		req.SessionID, names, quantities, req.Parameters.String(ParamConfirmation),
	)
	if err != nil {
		return "", err
	}
	return d.handlers.AddToOrder.Handle(ctx, cmd)
}

func (d *Dispatcher) removeFromOrder(ctx context.Context, req Request) (string, error) {
	names, err := req.Parameters.Strings(ParamFoodItems)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewRemoveFromOrderCommand(req.SessionID, names)
	if err != nil {
		return "", err
	}
	return d.handlers.RemoveFromOrder.Handle(ctx, cmd)
}

func (d *Dispatcher) completeOrder(ctx context.Context, sessionID kernel.SessionID) (string, error) {
	cmd, err := commands.NewCompleteOrderCommand(sessionID)
	if err != nil {
		return "", err
	}
	return d.handlers.CompleteOrder.Handle(ctx, cmd)
}

func (d *Dispatcher) trackOrder(ctx context.Context, req Request) (string, error) {
	raw, _ := req.Parameters.Value(ParamNumber)
	orderID, err := kernel.ParseOrderID(raw)
	if err != nil {
		return "", err
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return "", err
	}
	return d.handlers.TrackOrder.Handle(ctx, query)
}
