package domain

import "github.com/samber/lo"

// Audience is the set of users entitled to receive an event.
type Audience map[UserID]struct{}

func NewAudience(ids []UserID) Audience {
	return lo.SliceToMap(ids, func(id UserID) (UserID, struct{}) {
		return id, struct{}{}
	})
}

func (a Audience) Contains(id UserID) bool {
	_, ok := a[id]
	return ok
}

func (a Audience) Len() int { return len(a) }
