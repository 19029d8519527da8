package service

import "context"

// MarketNotifier pushes marketplace activity to devices.
type MarketNotifier interface {
	// NotifyNewListing announces a listing to every subscriber of the
	// marketplace topic.
	NotifyNewListing(ctx context.Context, event *MarketEvent) error

	// NotifyListingSold tells the seller their card was sold.
	NotifyListingSold(ctx context.Context, event *MarketEvent) error
}
