package models

import "time"

// UserView is the cached projection of a user. Unlike User it keeps the
// creation timestamp on the wire so a cache round trip is lossless.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdTimestamp"`
}

func NewUserView(u *User) *UserView {
	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// User converts the projection back to the entity. Users are never
// updated, so UpdatedAt is always nil.
func (v *UserView) User() *User {
	return &User{
		Entity: Entity{ID: v.ID, CreatedAt: v.CreatedAt},
		Name:   v.Name,
		Email:  v.Email,
	}
}
