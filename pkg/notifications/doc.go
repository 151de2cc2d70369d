// Package notifications delivers short-lived toast messages to a profile.
//
// A Toast carries a message, a Type (success, error, info, warning), a display
// Duration and a screen Position. Manager fills defaults (4 seconds,
// top-center), stores the toast in a per-profile history and hands it to a
// Deliverer. Delivery is best effort: failures are logged and never reach the
// caller, so views can fire and forget with Notify.
//
// BroadcastDeliverer pushes toasts to live subscribers, one in-memory
// broadcaster per profile, which is what the SSE stream reads from.
//
//	mgr := notifications.NewManager(
//	    notifications.NewMemoryStorage(20),
//	    notifications.NewBroadcastDeliverer(16),
//	)
//	mgr.Success(ctx, profileID, "User added successfully!")
package notifications
