package domain

import "errors"

var (
	// ErrUnauthorized is returned when the claimed actor could not prove its identity or lacks the privilege
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyInitialized is returned when governance has already been initialized
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrNotInitialized is returned when an operation needs governance configuration that does not exist yet
	ErrNotInitialized = errors.New("not initialized")

	// ErrBelowMinimum is returned when a tip amount is smaller than MINIMUM_TIP
	ErrBelowMinimum = errors.New("tip amount below minimum")

	// ErrBelowThreshold is returned when the tip snapshot supplied to mint is below the tip threshold
	ErrBelowThreshold = errors.New("tip amount below mint threshold")

	// ErrAlreadyMinted is returned when an item already has a collectible
	ErrAlreadyMinted = errors.New("item already minted")

	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrNotOwner is returned when the actor does not own the token it tries to transfer
	ErrNotOwner = errors.New("not the owner")

	// ErrFeeTooHigh is returned when a fee above MAX_PLATFORM_FEE_BPS is requested
	ErrFeeTooHigh = errors.New("fee too high")

	// ErrContractPaused is returned by pause-aware entry points while governance is paused
	ErrContractPaused = errors.New("contract paused")

	// ErrTransferFailed is returned when the external token ledger rejects a value transfer
	ErrTransferFailed = errors.New("transfer failed")

	// ErrWithdrawUnsupported is returned by withdraw when the settlement strategy cannot pay out balances
	ErrWithdrawUnsupported = errors.New("withdraw not supported")

	// ErrInvalidArgument is returned when an identifier or amount is malformed
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRegistryDesync is returned when a token id is missing from its owner's registry entry
	ErrRegistryDesync = errors.New("owner registry out of sync")
)
