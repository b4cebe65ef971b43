package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type DemoRequest struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255)"`
	Company     string `gorm:"type:varchar(255)"`
	CompanySize string `gorm:"type:varchar(50)"`
	Phone       string `gorm:"type:varchar(100)"`
	Message     string
	Status      string `gorm:"type:varchar(50)"`
}

type NewsletterSubscription struct {
	BaseModel
	Email  string `gorm:"type:varchar(255);uniqueIndex"`
	Status string `gorm:"type:varchar(50)"`
}

type Testimonial struct {
	BaseModel
	AuthorName   string `gorm:"type:varchar(255)"`
	AuthorRole   string `gorm:"type:varchar(255)"`
	Company      string `gorm:"type:varchar(255)"`
	AvatarUrl    string
	Quote        string
	Rating       float64
	Metrics      StringMap `gorm:"type:jsonb"`
	IsFeatured   bool      `gorm:"index"`
	DisplayOrder int
}

type PricingPlan struct {
	BaseModel
	Name         string `gorm:"type:varchar(255)"`
	Price        float64
	Period       string `gorm:"type:varchar(50)"`
	Description  string
	Features     pq.StringArray `gorm:"type:text[]"`
	IsPopular    bool
	IsActive     bool `gorm:"index"`
	DisplayOrder int
}

type Feature struct {
	BaseModel
	Title        string `gorm:"type:varchar(255)"`
	Description  string
	Icon         string `gorm:"type:varchar(100)"`
	Category     string `gorm:"type:varchar(100)"`
	Benefits     pq.StringArray `gorm:"type:text[]"`
	ImageUrl     string
	IsFeatured   bool `gorm:"index"`
	DisplayOrder int
}

type Faq struct {
	BaseModel
	Question     string
	Answer       string
	Category     string `gorm:"type:varchar(100)"`
	IsActive     bool   `gorm:"index"`
	DisplayOrder int
}

type StringMap map[string]string

func (j StringMap) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *StringMap) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	case nil:
		return nil
	}
	return errors.Errorf("unsupported map value %T", value)
}

type Integration struct {
	BaseModel
	Name         string `gorm:"type:varchar(255)"`
	LogoUrl      string
	Category     string `gorm:"type:varchar(100)"`
	IsFeatured   bool   `gorm:"index"`
	DisplayOrder int
}
