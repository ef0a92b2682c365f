package models

// UnloadingGodown is a name-keyed dropdown entry for the godown a
// purchase was unloaded at. Names are unique, matched case-sensitively.
type UnloadingGodown struct {
	ID   int64  `json:"id" db:"id" bson:"_id"`
	Name string `json:"name" db:"name" bson:"name"`
}
