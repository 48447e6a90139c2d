package credstore

import "errors"

var (
	// ErrNoCredentials indicates no complete token+user snapshot is stored
	ErrNoCredentials = errors.New("credstore.no_credentials")

	// ErrIncompleteCredentials indicates a Save with a missing token or user
	ErrIncompleteCredentials = errors.New("credstore.incomplete_credentials")

	// ErrStoreFailure indicates the backend rejected a read or write
	ErrStoreFailure = errors.New("credstore.store_failure")

	// ErrFailedToParseRedisConnString indicates an invalid Redis URL
	ErrFailedToParseRedisConnString = errors.New("credstore.failed_to_parse_redis_conn_string")

	// ErrRedisNotReady indicates the Redis server did not answer the ping
	ErrRedisNotReady = errors.New("credstore.redis_not_ready")
)
