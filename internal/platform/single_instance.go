package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"os/user"
)

// ErrAlreadyRunning indicates another stopwatch for this user holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard holds the single-instance lock.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds a loopback port derived from appName and the
// current user, so each user runs at most one stopwatch.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	return acquire(lockKey(appName))
}

func acquire(key string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(key))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock. It is safe to call on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

func lockKey(appName string) string {
	current, err := user.Current()
	if err != nil {
		return appName
	}
	return appName + "/" + current.Uid
}

func lockPort(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	rangeSize := maxLockPort - minLockPort + 1
	return minLockPort + int(hash.Sum32()%uint32(rangeSize))
}
