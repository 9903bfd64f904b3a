package models

// Feedback is a message sent by a user to the admin team. bson and json tag
// names match because submissions reach MongoDB through the JSON-encoded sync
// queue.
type Feedback struct {
	ID       string `bson:"_id" json:"id"`
	UserID   string `bson:"userId" json:"userId"`
	UserName string `bson:"userName" json:"userName"`
	Message  string `bson:"message" json:"message"`
	Date     string `bson:"date" json:"date"`
}
