package message

import "github.com/pkg/errors"

var (
	// ErrUnknownMessage is returned when a message id is not stored in the arena.
	ErrUnknownMessage = errors.New("unknown message")
	// ErrSequenceExhausted is returned once every message id has been issued.
	ErrSequenceExhausted = errors.New("message id sequence exhausted")
	// ErrGenesisExists is returned when a second genesis block is requested.
	ErrGenesisExists = errors.New("genesis block already created")
	// ErrNoGenesis is returned when messages are appended before genesis.
	ErrNoGenesis = errors.New("genesis block not created")
	// ErrEmptyJustification is returned for a non-genesis message without justification.
	ErrEmptyJustification = errors.New("empty justification")
	// ErrEstimateNotJustified is returned when the estimate is neither genesis
	// nor part of the justification.
	ErrEstimateNotJustified = errors.New("estimate is not in the justification")
)
