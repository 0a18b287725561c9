package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityID identifies an account, token, topic, contract, file or schedule.
type EntityID struct {
	Shard int64
	Realm int64
	Num   int64
}

// String formats the id as shard.realm.num.
func (e EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", e.Shard, e.Realm, e.Num)
}

// IsZero reports whether the id is unset.
func (e EntityID) IsZero() bool {
	return e == EntityID{}
}

// ParseEntityID parses shard.realm.num.
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return EntityID{}, fmt.Errorf("entity id %q: expected shard.realm.num", s)
	}
	var nums [3]int64
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n < 0 {
			return EntityID{}, fmt.Errorf("entity id %q: invalid component %q", s, part)
		}
		nums[i] = n
	}
	return EntityID{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}
