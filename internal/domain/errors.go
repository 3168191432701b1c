package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrChainQuery is the sentinel matched by every ChainQueryError
	ErrChainQuery = errors.New("chain query failed")

	// ErrMetadataUnavailable is the sentinel matched by every MetadataUnavailableError
	ErrMetadataUnavailable = errors.New("metadata unavailable")

	// ErrPublish is the sentinel matched by every PublishError
	ErrPublish = errors.New("publish failed")

	// ErrBlockResolution is the sentinel matched by every BlockResolutionError
	ErrBlockResolution = errors.New("block resolution failed")

	// ErrQueueClosed is returned when a task is enqueued after the queue was closed
	ErrQueueClosed = errors.New("queue is closed")

	// ErrInvalidLocator is returned for malformed content locators
	ErrInvalidLocator = errors.New("invalid locator")

	// ErrInvalidAddress is returned for malformed account addresses
	ErrInvalidAddress = errors.New("invalid address")

	// ErrTokenNotFound is returned when a token is not known to the registry
	ErrTokenNotFound = errors.New("token not found")
)

// ChainQueryError reports a failed on-chain read or write: provider unreachable,
// call reverted or transaction rejected by the wallet.
type ChainQueryError struct {
	Op  string
	Err error
}

func NewChainQueryError(op string, err error) *ChainQueryError {
	return &ChainQueryError{Op: op, Err: err}
}

func (e *ChainQueryError) Error() string {
	return fmt.Sprintf("chain query %s: %v", e.Op, e.Err)
}

func (e *ChainQueryError) Unwrap() error { return e.Err }

func (e *ChainQueryError) Is(target error) bool { return target == ErrChainQuery }

// MetadataUnavailableError reports that the off-chain description of a token
// could not be fetched or parsed.
type MetadataUnavailableError struct {
	Locator string
	Err     error
}

func NewMetadataUnavailableError(locator string, err error) *MetadataUnavailableError {
	return &MetadataUnavailableError{Locator: locator, Err: err}
}

func (e *MetadataUnavailableError) Error() string {
	return fmt.Sprintf("metadata unavailable for %q: %v", e.Locator, e.Err)
}

func (e *MetadataUnavailableError) Unwrap() error { return e.Err }

func (e *MetadataUnavailableError) Is(target error) bool { return target == ErrMetadataUnavailable }

// PublishError reports a failed pinning operation.
// Reason carries the structured failure reason returned by the pinning service, if any.
type PublishError struct {
	Name   string
	Reason string
	Err    error
}

func NewPublishError(name, reason string, err error) *PublishError {
	return &PublishError{Name: name, Reason: reason, Err: err}
}

func (e *PublishError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("publish %s: %s: %v", e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("publish %s: %v", e.Name, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

func (e *PublishError) Is(target error) bool { return target == ErrPublish }

// BlockResolutionError reports a failed block lookup for a single transfer event
type BlockResolutionError struct {
	BlockNumber uint64
	TxHash      string
	Err         error
}

func NewBlockResolutionError(blockNumber uint64, txHash string, err error) *BlockResolutionError {
	return &BlockResolutionError{BlockNumber: blockNumber, TxHash: txHash, Err: err}
}

func (e *BlockResolutionError) Error() string {
	return fmt.Sprintf("resolve block %d for tx %s: %v", e.BlockNumber, e.TxHash, e.Err)
}

func (e *BlockResolutionError) Unwrap() error { return e.Err }

func (e *BlockResolutionError) Is(target error) bool { return target == ErrBlockResolution }
