package models

// User is the sole persisted entity. The store assigns ID on create;
// it never changes afterwards and is the only key for update/delete.
//
// Password is serialized on purpose: every response echoes the stored
// record, which holds a bcrypt hash for registered users and the raw
// value for users written through the generic create/update routes.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
