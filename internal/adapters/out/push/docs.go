// Package push delivers status events as mobile push notifications through an
// Expo style push API.
//
// A send returns one ticket per message. A ticket may already report that the
// device is gone, in which case Send returns ports.ErrAddressGone and the fan-out
// retires the token. Otherwise the ticket id is kept by a ReceiptTracker and the
// final receipt is fetched later by CheckReceipts, which retires the tokens the
// provider reports as unregistered.
package push
