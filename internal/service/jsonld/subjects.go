package jsonld

// Subject is the closed set of records a schema can be built from.
type Subject interface {
	schemaType() string
}

// Offer is a price attached to a service.
type Offer struct {
	Price         string
	PriceCurrency string
}

// Service describes a treatment page.
type Service struct {
	Name        string
	Description string
	URL         string
	Provider    string
	ServiceType string
	AreaServed  string
	Image       string
	Offers      *Offer
}

// FAQ is one question and its answer.
type FAQ struct {
	Question string
	Answer   string
}

// FAQList feeds an FAQPage.
type FAQList []FAQ

// Review is a single patient testimonial on a 1-5 scale.
type Review struct {
	Author        string
	Rating        float64
	ReviewBody    string
	DatePublished string
}

// Person is a practitioner.
type Person struct {
	Name  string
	Title string
	Bio   string
	Image string
	Email string
	Phone string
}

// BlogPosting is a blog article.
type BlogPosting struct {
	Slug         string
	Title        string
	Description  string
	Date         string
	DateModified string
	Author       string
	Image        string
}

// Crumb is one step of a breadcrumb trail; URL must be absolute.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbList feeds a BreadcrumbList schema.
type BreadcrumbList []Crumb

// AggregateRating summarises many reviews.
type AggregateRating struct {
	RatingValue float64
	ReviewCount int
}

func (Service) schemaType() string         { return TypeService }
func (FAQList) schemaType() string         { return TypeFAQPage }
func (Review) schemaType() string          { return TypeReview }
func (Person) schemaType() string          { return TypePerson }
func (BlogPosting) schemaType() string     { return TypeBlogPosting }
func (BreadcrumbList) schemaType() string  { return TypeBreadcrumbList }
func (AggregateRating) schemaType() string { return TypeAggregateRating }
