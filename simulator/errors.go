package simulator

import (
	sdkerrors "cosmossdk.io/errors"
)

// ModuleName is the codespace for simulator sentinel errors.
const ModuleName = "simulator"

// Simulation sentinel errors. All of them are fatal to the whole route: the
// caller gets either a complete result or one of these, never a partial
// breakdown.
var (
	ErrPoolNotFound  = sdkerrors.Register(ModuleName, 1, "pool not found")
	ErrInvalidHop    = sdkerrors.Register(ModuleName, 2, "hop asset does not match pool")
	ErrInvalidAmount = sdkerrors.Register(ModuleName, 3, "invalid amount")
	ErrEmptyRoute    = sdkerrors.Register(ModuleName, 4, "route has no hops")
)
