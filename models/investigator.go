package models

// Investigator holds the structure for the investigators collection in mongo.
// Used by the auth middleware only; row-level visibility is enforced by the
// persistence collaborator, not here.
type Investigator struct {
	ID       string `json:"id" bson:"_id"`
	FullName string `json:"fullName" bson:"fullName"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"` // bcrypt hash
	Role     string `json:"role" bson:"role"`  // "investigator" or "admin"
	Agency   string `json:"agency" bson:"agency"`
}
