package handlers

import (
	userRepoPkg "weddify/database/repository/user"
	vendorRepoPkg "weddify/database/repository/vendor"
)

// HandlerBundle groups all endpoint handlers plus the repositories the
// route layer needs for middleware wiring.
type HandlerBundle struct {
	UserRepo   userRepoPkg.UserRepository
	VendorRepo vendorRepoPkg.VendorRepository

	User      *UserHandler
	Vendor    *VendorHandler
	Venue     *VenueHandler
	Booking   *BookingHandler
	Feed      *FeedHandler
	Admin     *AdminHandler
	Assistant *AssistantHandler
	Storage   *StorageHandler
}
