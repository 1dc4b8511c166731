package monitor

import (
	"os/user"
	"strconv"
)

// OwnerResolver maps a numeric uid to a display name.
type OwnerResolver interface {
	LookupUID(uid int) (string, error)
}

// SystemOwners resolves uids through the system user database and caches
// successful lookups. Not safe for concurrent use.
type SystemOwners struct {
	cache map[int]string
}

// NewSystemOwners returns a resolver backed by the system user database.
func NewSystemOwners() *SystemOwners {
	return &SystemOwners{cache: make(map[int]string)}
}

// LookupUID returns the user name for uid.
func (o *SystemOwners) LookupUID(uid int) (string, error) {
	if name, ok := o.cache[uid]; ok {
		return name, nil
	}
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return "", err
	}
	o.cache[uid] = u.Username
	return u.Username, nil
}
