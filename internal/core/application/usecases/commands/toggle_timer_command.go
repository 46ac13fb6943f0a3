package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrToggleTimerCommandIsNotConstructed = errors.New(
	"ToggleTimerCommand must be created via NewToggleTimerCommand constructor",
)

// ToggleTimerCommand pauses (pause=true) or resumes the preparation timer.
type ToggleTimerCommand struct {
	ticketID kernel.UUID
	pause    bool

	guard guard.ConstructorGuard
}

func NewToggleTimerCommand(ticketID kernel.UUID, pause bool) (ToggleTimerCommand, error) {
	cmd := ToggleTimerCommand{
		pause: pause,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
	); err != nil {
		return ToggleTimerCommand{}, err
	}

	return cmd, nil
}

func (c ToggleTimerCommand) Validate() error {
	return c.guard.Validate(ErrToggleTimerCommandIsNotConstructed)
}

func (c ToggleTimerCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c ToggleTimerCommand) Pause() bool {
	return c.pause
}

func (c *ToggleTimerCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}
