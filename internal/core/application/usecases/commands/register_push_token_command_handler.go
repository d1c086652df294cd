package commands

import (
	"context"
)

// RegisterPushTokenCommandHandler saves a push token. Registering the same token
// again is a no-op for the same owner and a reassignment for another.
type RegisterPushTokenCommandHandler struct {
	uowFactory PushTokenUoWFactory
}

func NewRegisterPushTokenCommandHandler(uowFactory PushTokenUoWFactory) RegisterPushTokenCommandHandler {
	return RegisterPushTokenCommandHandler{uowFactory: uowFactory}
}

func (h RegisterPushTokenCommandHandler) Handle(ctx context.Context, command RegisterPushTokenCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PushTokenRepository().Save(ctx, command.OwnerID(), command.Token()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
