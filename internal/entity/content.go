package entity

// Service is a treatment offered by the practice.
type Service struct {
	ID               string   `yaml:"id" json:"id" validate:"required"`
	Slug             string   `yaml:"slug" json:"slug" validate:"required"`
	Name             string   `yaml:"name" json:"name" validate:"required"`
	Description      string   `yaml:"description" json:"description" validate:"required"`
	Duration         string   `yaml:"duration,omitempty" json:"duration,omitempty"`
	Price            string   `yaml:"price,omitempty" json:"price,omitempty"`
	Image            string   `yaml:"image,omitempty" json:"image,omitempty"`
	ImageAlt         string   `yaml:"image_alt,omitempty" json:"image_alt,omitempty"`
	Benefits         []string `yaml:"benefits,omitempty" json:"benefits,omitempty"`
	Featured         bool     `yaml:"featured,omitempty" json:"featured"`
	ShortDescription string   `yaml:"short_description,omitempty" json:"short_description,omitempty"`
	FullDescription  string   `yaml:"full_description,omitempty" json:"full_description,omitempty"`
	IdealFor         []string `yaml:"ideal_for,omitempty" json:"ideal_for,omitempty"`
	ServiceType      string   `yaml:"service_type,omitempty" json:"service_type,omitempty"`
}

// FAQItem is a single question and answer pair.
type FAQItem struct {
	ID       string `yaml:"id" json:"id" validate:"required"`
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
}

// GalleryItem is one image in the gallery section.
type GalleryItem struct {
	ID    string `yaml:"id" json:"id" validate:"required"`
	Image string `yaml:"image" json:"image" validate:"required"`
	Alt   string `yaml:"alt" json:"alt" validate:"required"`
}

// GalleryContent is the gallery section.
type GalleryContent struct {
	Title    string        `yaml:"title" json:"title"`
	Subtitle string        `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Items    []GalleryItem `yaml:"items" json:"items" validate:"dive"`
}

// AboutPreview is the short homepage introduction.
type AboutPreview struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image,omitempty" json:"image,omitempty"`
	ImageAlt    string `yaml:"image_alt,omitempty" json:"image_alt,omitempty"`
}

// AboutFull is the dedicated about page content.
type AboutFull struct {
	Title      string   `yaml:"title" json:"title"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
	Image      string   `yaml:"image,omitempty" json:"image,omitempty"`
	ImageAlt   string   `yaml:"image_alt,omitempty" json:"image_alt,omitempty"`
}

// About groups the preview and full about content.
type About struct {
	Preview AboutPreview `yaml:"preview" json:"preview"`
	Full    AboutFull    `yaml:"full" json:"full"`
}

// FeatureBlock highlights one aspect of the practice.
type FeatureBlock struct {
	ID            string `yaml:"id" json:"id" validate:"required"`
	Title         string `yaml:"title" json:"title" validate:"required"`
	Description   string `yaml:"description" json:"description"`
	Image         string `yaml:"image,omitempty" json:"image,omitempty"`
	ImageAlt      string `yaml:"image_alt,omitempty" json:"image_alt,omitempty"`
	ImagePosition string `yaml:"image_position" json:"image_position" validate:"omitempty,oneof=left right"`
}

// CTAContent is the call-to-action banner.
type CTAContent struct {
	Title              string `yaml:"title" json:"title"`
	Description        string `yaml:"description" json:"description"`
	CTAText            string `yaml:"cta_text" json:"cta_text"`
	CTAURL             string `yaml:"cta_url" json:"cta_url" validate:"omitempty,url"`
	BackgroundImage    string `yaml:"background_image,omitempty" json:"background_image,omitempty"`
	BackgroundImageAlt string `yaml:"background_image_alt,omitempty" json:"background_image_alt,omitempty"`
}

// NavItem is a navigation link.
type NavItem struct {
	Label    string `yaml:"label" json:"label" validate:"required"`
	Href     string `yaml:"href" json:"href" validate:"required"`
	External bool   `yaml:"external,omitempty" json:"external,omitempty"`
}

// Navigation holds the header and footer link sets.
type Navigation struct {
	Main  []NavItem `yaml:"main" json:"main" validate:"dive"`
	Quick []NavItem `yaml:"quick" json:"quick" validate:"dive"`
}

// TeamMember is a practitioner shown on the about page.
type TeamMember struct {
	ID    string `yaml:"id" json:"id" validate:"required"`
	Name  string `yaml:"name" json:"name" validate:"required"`
	Title string `yaml:"title" json:"title"`
	Bio   string `yaml:"bio,omitempty" json:"bio,omitempty"`
	Image string `yaml:"image,omitempty" json:"image,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone string `yaml:"phone,omitempty" json:"phone,omitempty"`
}

// Testimonial is a patient review already normalised to a 1-5 scale.
type Testimonial struct {
	Author        string  `yaml:"author" json:"author" validate:"required"`
	Rating        float64 `yaml:"rating" json:"rating" validate:"gte=1,lte=5"`
	Body          string  `yaml:"body" json:"body" validate:"required"`
	DatePublished string  `yaml:"date_published,omitempty" json:"date_published,omitempty"`
}
