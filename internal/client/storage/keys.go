package storage

// Local key namespace shared by the adapters and domain services.
const (
	KeySessions  = "sessions"
	KeyTrainings = "trainings"

	// KeyPendingWrites holds the remote adapter's offline write queue
	KeyPendingWrites = "remote_pending_writes"

	remoteCachePrefix     = "remote_cache_"
	sessionRecoveryPrefix = "session_recovery_"
)

// RemoteCacheKey returns the local key of the fallback copy of a remote value.
func RemoteCacheKey(key string) string {
	return remoteCachePrefix + key
}

// RemoteCachePrefix is the common prefix of all fallback copies.
func RemoteCachePrefix() string {
	return remoteCachePrefix
}

// SessionRecoveryKey returns the local key of a crash-recovery snapshot.
func SessionRecoveryKey(sessionID string) string {
	return sessionRecoveryPrefix + sessionID
}

// SessionRecoveryPrefix is the common prefix of crash-recovery snapshots.
func SessionRecoveryPrefix() string {
	return sessionRecoveryPrefix
}
