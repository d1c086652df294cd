package commands

import (
	"errors"
	"strings"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/errs"
	"shipflow/internal/pkg/guard"
)

var ErrRegisterPushTokenCommandIsNotConstructed = errors.New(
	"RegisterPushTokenCommand must be created via NewRegisterPushTokenCommand constructor",
)

// RegisterPushTokenCommand stores a device token for the acting party.
type RegisterPushTokenCommand struct {
	ownerID kernel.UUID
	token   string
	guard   guard.ConstructorGuard
}

func NewRegisterPushTokenCommand(ownerID kernel.UUID, token string) (RegisterPushTokenCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return RegisterPushTokenCommand{}, err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return RegisterPushTokenCommand{}, errs.NewValueIsRequiredError("token")
	}

	return RegisterPushTokenCommand{
		ownerID: ownerID,
		token:   token,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterPushTokenCommand) OwnerID() kernel.UUID { return c.ownerID }
func (c RegisterPushTokenCommand) Token() string { return c.token }

func (c RegisterPushTokenCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPushTokenCommandIsNotConstructed)
}
