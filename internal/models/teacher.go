package models

// Teacher model. The username doubles as the document _id, so resolving a
// signed-in teacher is a single lookup by key.
type Teacher struct {
	Username    string `bson:"_id" json:"username"`
	DisplayName string `bson:"display_name" json:"display_name"`
	HPassword   string `bson:"password" json:"-"`
	Role        string `bson:"role" json:"role"`
}
