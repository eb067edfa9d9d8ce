package session

import (
	"context"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"learnify/internal/models"
)

// Keys names the storage keys the session is cached under.
type Keys struct {
	Token string
	Email string
}

// Load reads the session token and the user email concurrently. The two reads are independent:
// an absent key leaves its half of the session nil, and so does a failed read, which is logged
// rather than returned.
func Load(ctx context.Context, storage Storage, keys Keys) *models.Session {
	return Reload(ctx, storage, keys, models.Session{})
}

// Reload re-reads both halves of a session that was loaded earlier. A half whose read fails keeps
// its value from prev, so a cancelled or broken read never signs the user out.
func Reload(ctx context.Context, storage Storage, keys Keys, prev models.Session) *models.Session {
	s := &models.Session{Token: prev.Token, Email: prev.Email}
	if storage == nil {
		glog.Warningln("no session storage configured, continuing without a session")
		return s
	}

	var g errgroup.Group
	g.Go(func() error {
		if val, err := LookupItem(ctx, storage, keys.Token); err == nil {
			s.Token = val
		}
		return nil
	})
	g.Go(func() error {
		if val, err := LookupItem(ctx, storage, keys.Email); err == nil {
			s.Email = val
		}
		return nil
	})
	_ = g.Wait()

	return s
}

// ReadItem returns the value stored under key, or nil if it is absent or cannot be read.
func ReadItem(ctx context.Context, storage Storage, key string) *string {
	val, _ := LookupItem(ctx, storage, key)
	return val
}

// LookupItem returns the value stored under key, nil if it is absent, or the read error. Read
// errors are logged here so callers may drop them.
func LookupItem(ctx context.Context, storage Storage, key string) (*string, error) {
	if storage == nil {
		return nil, nil
	}

	val, ok, err := storage.GetItem(ctx, key)
	if err != nil {
		glog.Warningf("error reading %q from session storage: %v\n", key, err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &val, nil
}
