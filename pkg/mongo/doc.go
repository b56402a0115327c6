// Package mongo opens the MongoDB client used by pkg/mongostore.
//
// [Config] is loaded from the environment:
//
//	MONGODB_URL                 (required)
//	MONGODB_DATABASE            (default: slugger)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 10)
//	MONGODB_MIN_POOL_SIZE       (default: 0)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_READS         (default: true)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 2s)
//
// [New] pings the primary before returning, so a returned client is usable.
// Failures are reported as [ErrFailedToConnectToMongo] and [ErrHealthcheckFailed].
package mongo
