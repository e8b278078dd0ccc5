package models

// Communication is one logged contact (email, text, call) on a case.
type Communication struct {
	ID        string `json:"id" bson:"id"`
	Date      string `json:"date" bson:"date"` // YYYY-MM-DD
	Type      string `json:"type" bson:"type"`
	Content   string `json:"content" bson:"content"`
	Recipient string `json:"recipient" bson:"recipient"`
}
