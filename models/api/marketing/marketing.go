package marketingapimodels

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"regexp"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

var companySizes = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}

type DemoRequestData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	CompanySize string `json:"company_size"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
}

func (d DemoRequestData) Validate() error {
	verr := &models.ValidationError{}
	if strings.TrimSpace(d.Name) == "" {
		verr.Add("name", "Name is required")
	}
	if !emailRe.MatchString(d.Email) {
		verr.Add("email", "Valid email is required")
	}
	if strings.TrimSpace(d.Company) == "" {
		verr.Add("company", "Company is required")
	}
	if !isCompanySize(d.CompanySize) {
		verr.Add("company_size", "Company size is required")
	}
	return verr.OrNil()
}

func isCompanySize(value string) bool {
	for _, size := range companySizes {
		if size == value {
			return true
		}
	}
	return false
}

func (d DemoRequestData) ToModel() dbmodels.DemoRequest {
	return dbmodels.DemoRequest{
		Name:        strings.TrimSpace(d.Name),
		Email:       strings.TrimSpace(d.Email),
		Company:     strings.TrimSpace(d.Company),
		CompanySize: d.CompanySize,
		Phone:       strings.TrimSpace(d.Phone),
		Message:     d.Message,
		Status:      DemoRequestStatusNew,
	}
}

const (
	DemoRequestStatusNew     = "new"
	SubscriptionStatusActive = "active"
)

type DemoRequestView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	CompanySize string `json:"company_size"`
	Phone       string `json:"phone,omitempty"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func DemoRequestConvert(rec dbmodels.DemoRequest) DemoRequestView {
	return DemoRequestView{
		ID:          rec.ID,
		Name:        rec.Name,
		Email:       rec.Email,
		Company:     rec.Company,
		CompanySize: rec.CompanySize,
		Phone:       rec.Phone,
		Message:     rec.Message,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}

type NewsletterData struct {
	Email string `json:"email"`
}

func (n NewsletterData) Validate() error {
	if !emailRe.MatchString(n.Email) {
		return models.NewValidationError("email", "Valid email is required")
	}
	return nil
}

// GetEmail is the normalized key subscriptions are unique on.
func (n NewsletterData) GetEmail() string {
	return strings.ToLower(strings.TrimSpace(n.Email))
}

type TestimonialView struct {
	ID         string            `json:"id"`
	AuthorName string            `json:"author_name"`
	AuthorRole string            `json:"author_role"`
	Company    string            `json:"company"`
	AvatarUrl  string            `json:"avatar_url,omitempty"`
	Quote      string            `json:"quote"`
	Rating     float64           `json:"rating"`
	Metrics    map[string]string `json:"metrics"`
}

func TestimonialConvert(rec dbmodels.Testimonial) TestimonialView {
	return TestimonialView{
		ID:         rec.ID,
		AuthorName: rec.AuthorName,
		AuthorRole: rec.AuthorRole,
		Company:    rec.Company,
		AvatarUrl:  rec.AvatarUrl,
		Quote:      rec.Quote,
		Rating:     rec.Rating,
		Metrics:    rec.Metrics,
	}
}

type PricingPlanView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"is_popular"`
}

func PricingPlanConvert(rec dbmodels.PricingPlan) PricingPlanView {
	return PricingPlanView{
		ID:          rec.ID,
		Name:        rec.Name,
		Price:       rec.Price,
		Period:      rec.Period,
		Description: rec.Description,
		Features:    append([]string{}, rec.Features...),
		IsPopular:   rec.IsPopular,
	}
}

type FeatureView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category"`
	Benefits    []string `json:"benefits"`
	ImageUrl    string   `json:"image_url,omitempty"`
}

func FeatureConvert(rec dbmodels.Feature) FeatureView {
	return FeatureView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Icon:        rec.Icon,
		Category:    rec.Category,
		Benefits:    append([]string{}, rec.Benefits...),
		ImageUrl:    rec.ImageUrl,
	}
}

type IntegrationView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LogoUrl  string `json:"logo_url"`
	Category string `json:"category"`
}

func IntegrationConvert(rec dbmodels.Integration) IntegrationView {
	return IntegrationView{
		ID:       rec.ID,
		Name:     rec.Name,
		LogoUrl:  rec.LogoUrl,
		Category: rec.Category,
	}
}

type FaqView struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func FaqConvert(rec dbmodels.Faq) FaqView {
	return FaqView{
		ID:       rec.ID,
		Question: rec.Question,
		Answer:   rec.Answer,
		Category: rec.Category,
	}
}
