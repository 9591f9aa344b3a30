package service

// Owned is implemented by entities that record their creator.
type Owned interface {
	OwnerID() string
}

// Authorize allows a mutation only when actorID created entity. Entities
// whose creator has been deleted can no longer be changed by anyone.
func Authorize(actorID string, entity Owned) error {
	owner := entity.OwnerID()
	if owner == "" || actorID == "" || owner != actorID {
		return ErrPermissionDenied
	}
	return nil
}
