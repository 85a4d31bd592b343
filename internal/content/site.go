package content

import (
	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/service/openstatus"
)

// Site is an immutable snapshot of the practice's content.
type Site struct {
	Business     entity.BusinessProfile `yaml:"business"`
	Services     []entity.Service       `yaml:"services" validate:"required,min=1,unique=Slug,dive"`
	FAQs         []entity.FAQItem       `yaml:"faqs" validate:"unique=ID,dive"`
	Gallery      entity.GalleryContent  `yaml:"gallery"`
	About        entity.About           `yaml:"about"`
	Features     []entity.FeatureBlock  `yaml:"features" validate:"dive"`
	CTA          entity.CTAContent      `yaml:"cta"`
	Navigation   entity.Navigation      `yaml:"navigation"`
	Team         []entity.TeamMember    `yaml:"team" validate:"unique=ID,dive"`
	Testimonials []entity.Testimonial   `yaml:"testimonials" validate:"dive"`

	rules openstatus.RuleTable
}

// OpeningRules returns the numeric opening windows derived from the business hours.
func (s *Site) OpeningRules() openstatus.RuleTable {
	return s.rules
}

func (s *Site) AllServices() []entity.Service {
	return s.Services
}

func (s *Site) FeaturedServices() []entity.Service {
	featured := make([]entity.Service, 0, len(s.Services))
	for _, service := range s.Services {
		if service.Featured {
			featured = append(featured, service)
		}
	}
	return featured
}

func (s *Site) ServiceBySlug(slug string) (entity.Service, bool) {
	for _, service := range s.Services {
		if service.Slug == slug {
			return service, true
		}
	}
	return entity.Service{}, false
}

func (s *Site) ServiceByID(id string) (entity.Service, bool) {
	for _, service := range s.Services {
		if service.ID == id {
			return service, true
		}
	}
	return entity.Service{}, false
}

func (s *Site) AllFaqs() []entity.FAQItem {
	return s.FAQs
}

func (s *Site) FaqByID(id string) (entity.FAQItem, bool) {
	for _, faq := range s.FAQs {
		if faq.ID == id {
			return faq, true
		}
	}
	return entity.FAQItem{}, false
}

func (s *Site) GalleryItems() []entity.GalleryItem {
	return s.Gallery.Items
}

func (s *Site) TeamMemberByID(id string) (entity.TeamMember, bool) {
	for _, member := range s.Team {
		if member.ID == id {
			return member, true
		}
	}
	return entity.TeamMember{}, false
}

// AverageRating returns the mean testimonial rating and the number of
// testimonials it covers; zero when there are none.
func (s *Site) AverageRating() (float64, int) {
	if len(s.Testimonials) == 0 {
		return 0, 0
	}
	var total float64
	for _, t := range s.Testimonials {
		total += t.Rating
	}
	return total / float64(len(s.Testimonials)), len(s.Testimonials)
}
