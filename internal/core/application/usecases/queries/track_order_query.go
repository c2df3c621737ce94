// Package queries contains read operations for retrieving system state.
// Queries never modify an order; they only report what was persisted.
package queries

import (
	"errors"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery asks for the tracking status of a placed order.
//
// Example:
//
//	id, err := kernel.ParseOrderID(params["number"])
//	if err != nil {
//	    return err
//	}
//	query, err := NewTrackOrderQuery(id)
//	if err != nil {
//	    return err
//	}
//
//	reply, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for the given order. Any parsed id is
// accepted; ids that were never allocated are answered as unknown orders.
func NewTrackOrderQuery(orderID kernel.OrderID) (TrackOrderQuery, error) {
	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the order being tracked.
func (q TrackOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}
