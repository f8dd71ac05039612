package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Categories a news post may belong to. The site renders these as fixed
// tabs, so the set is closed.
var Categories = []string{"공지사항", "교회소식", "행사안내"}

// ErrEmptyPatch is returned when a partial update supplies no fields.
var ErrEmptyPatch = errors.New("No fields to update")

// NewsPost is one news entry. bson tags follow the storage schema
// (snake_case), json tags the public API (camelCase). Optional fields are
// pointers so a value absent in storage is omitted from API responses.
type NewsPost struct {
	ID         int64     `bson:"id" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Date       string    `bson:"date" json:"date"` // YYYY-MM-DD
	Category   string    `bson:"category" json:"category"`
	Content    string    `bson:"content" json:"content"`
	FileURL    *string   `bson:"file_url,omitempty" json:"fileUrl,omitempty"`
	FileName   *string   `bson:"file_name,omitempty" json:"fileName,omitempty"`
	FileSize   *string   `bson:"file_size,omitempty" json:"fileSize,omitempty"`
	ImageURL   *string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Views      int64     `bson:"views" json:"views"`
	IsNew      bool      `bson:"is_new" json:"isNew"`
	ShowOnHome bool      `bson:"show_on_home" json:"showOnHome"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// ValidateNew checks the fields mandatory on creation.
func (p *NewsPost) ValidateNew() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Date == "" {
		return fmt.Errorf("date is required")
	}
	if !ValidCategory(p.Category) {
		return fmt.Errorf("category must be one of %v", Categories)
	}
	if p.Views < 0 {
		return fmt.Errorf("views must be a non-negative number")
	}
	return nil
}

// patchFields maps API field names to storage field names for everything a
// partial update may touch. Timestamps and the id are store-owned.
var patchFields = map[string]string{
	"title":      "title",
	"date":       "date",
	"category":   "category",
	"content":    "content",
	"fileUrl":    "file_url",
	"fileName":   "file_name",
	"fileSize":   "file_size",
	"imageUrl":   "image_url",
	"views":      "views",
	"isNew":      "is_new",
	"showOnHome": "show_on_home",
}

// nullable marks the fields an explicit JSON null may clear.
var nullable = map[string]bool{
	"fileUrl":  true,
	"fileName": true,
	"fileSize": true,
	"imageUrl": true,
}

// ParsePatch converts a partial-update body into a storage-side field set.
// Only keys present in the body are emitted, so fields the caller did not
// send stay untouched. An explicit null clears an optional field.
func ParsePatch(body []byte) (bson.M, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON body")
	}

	set := bson.M{}
	for apiName, dbName := range patchFields {
		val, ok := raw[apiName]
		if !ok {
			continue
		}
		if string(val) == "null" {
			if !nullable[apiName] {
				return nil, fmt.Errorf("%s cannot be null", apiName)
			}
			set[dbName] = nil
			continue
		}
		switch apiName {
		case "views":
			var n int64
			if err := json.Unmarshal(val, &n); err != nil || n < 0 {
				return nil, fmt.Errorf("views must be a non-negative number")
			}
			set[dbName] = n
		case "isNew", "showOnHome":
			var b bool
			if err := json.Unmarshal(val, &b); err != nil {
				return nil, fmt.Errorf("%s must be a boolean", apiName)
			}
			set[dbName] = b
		default:
			var s string
			if err := json.Unmarshal(val, &s); err != nil {
				return nil, fmt.Errorf("%s must be a string", apiName)
			}
			set[dbName] = s
		}
	}

	if len(set) == 0 {
		return nil, ErrEmptyPatch
	}
	if title, ok := set["title"]; ok && title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if date, ok := set["date"]; ok && date == "" {
		return nil, fmt.Errorf("date is required")
	}
	if cat, ok := set["category"]; ok {
		s, _ := cat.(string)
		if !ValidCategory(s) {
			return nil, fmt.Errorf("category must be one of %v", Categories)
		}
	}
	return set, nil
}
