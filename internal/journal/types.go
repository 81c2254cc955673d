package journal

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the closed set of entry categories.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryLearning Category = "learning"
	CategoryInterest Category = "interest-things"
)

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryWork, CategoryLearning, CategoryInterest:
		return Category(s), true
	}
	return "", false
}

// Intent identifies which mutation a form submission requests.
type Intent string

const (
	IntentCreate Intent = "create"
	IntentUpdate Intent = "update"
	IntentDelete Intent = "delete"
)

// ParseIntent reports whether s names a known intent.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentCreate, IntentUpdate, IntentDelete:
		return Intent(s), true
	}
	return "", false
}

// Entry is a single journal record. Date carries day granularity only and is
// stored at UTC midnight.
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      time.Time          `bson:"date" json:"date"`
	Category  Category           `bson:"category" json:"category"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// EntryForm holds raw field values as submitted, before validation.
type EntryForm struct {
	Date     string
	Category string
	Text     string
	Intent   string
	EntryID  string
}

// Draft is a submission the validator has certified.
type Draft struct {
	Date     time.Time
	Category Category
	Text     string
	Intent   Intent
	EntryID  string
}
