package service

import (
	"errors"
	"log"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/octobees/wellness-site/internal/content"
	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/service/jsonld"
	"github.com/octobees/wellness-site/internal/service/openstatus"
	"github.com/octobees/wellness-site/internal/service/seo"
)

// Page names understood by SiteService.Page.
const (
	PageHome       = "home"
	PageAbout      = "about"
	PageTreatments = "treatments"
	PageTreatment  = "treatment"
)

const (
	aboutTitle            = "About Us"
	aboutDescription      = "Learn more about our practitioners and our commitment to providing exceptional chiropractic care for sports and family wellness."
	treatmentsTitle       = "Treatments & Services"
	treatmentsDescription = "Explore our comprehensive range of chiropractic treatments and services designed to help you achieve optimal health and wellness."
)

var (
	// ErrPageNotFound indicates an unknown page name.
	ErrPageNotFound = errors.New("page not found")
	// ErrServiceNotFound indicates that no service matches the requested slug.
	ErrServiceNotFound = errors.New("service not found")
	// ErrSchemaNotFound indicates an unknown schema type or a missing subject.
	ErrSchemaNotFound = errors.New("schema not found")

	priceChars = regexp.MustCompile(`[^0-9.]`)
)

// ContentSource provides the active content snapshot.
type ContentSource interface {
	Current() *content.Site
}

// Page is the head data of one rendered page.
type Page struct {
	Name     string          `json:"name"`
	Metadata seo.Metadata    `json:"metadata"`
	Schemas  []jsonld.Object `json:"schemas"`
}

// SiteService composes pages, opening status and structured data from the
// current content snapshot.
type SiteService struct {
	content     ContentSource
	timezone    string
	phoneRegion string
	now         func() time.Time
	evaluators  atomic.Pointer[snapshotEvaluator]
}

// snapshotEvaluator is the evaluator built for one content snapshot.
type snapshotEvaluator struct {
	site      *content.Site
	evaluator *openstatus.Evaluator
}

// SiteServiceOption customises a SiteService.
type SiteServiceOption func(*SiteService)

// WithSiteClock overrides the clock used for status evaluation.
func WithSiteClock(now func() time.Time) SiteServiceOption {
	return func(s *SiteService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSiteService constructs a SiteService.
func NewSiteService(source ContentSource, timezone, phoneRegion string, opts ...SiteServiceOption) *SiteService {
	s := &SiteService{
		content:     source,
		timezone:    timezone,
		phoneRegion: phoneRegion,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Site returns the active content snapshot.
func (s *SiteService) Site() *content.Site {
	return s.content.Current()
}

// Links returns the contact and navigation links for the active snapshot.
func (s *SiteService) Links() Links {
	site := s.Site()
	return NewLinks(site.Business, site.Navigation, s.phoneRegion)
}

// Status evaluates whether the practice is open right now.
func (s *SiteService) Status() openstatus.OpenStatus {
	return s.evaluator().Status()
}

// Timezone reports the zone opening hours are evaluated in.
func (s *SiteService) Timezone() string {
	return s.evaluator().Timezone()
}

// evaluator returns the evaluator of the active snapshot, rebuilding it only
// after a reload has swapped the snapshot.
func (s *SiteService) evaluator() *openstatus.Evaluator {
	site := s.Site()
	if cached := s.evaluators.Load(); cached != nil && cached.site == site {
		return cached.evaluator
	}
	ev := openstatus.NewEvaluator(site.Business.Hours, s.timezone,
		openstatus.WithRules(site.OpeningRules()),
		openstatus.WithClock(s.now),
	)
	s.evaluators.Store(&snapshotEvaluator{site: site, evaluator: ev})
	return ev
}

// Page composes the metadata and structured data of the named page. slug
// selects the treatment for PageTreatment.
func (s *SiteService) Page(name, slug string) (Page, error) {
	site := s.Site()
	business := site.Business

	var page Page
	switch name {
	case PageHome:
		page = Page{Metadata: seo.HomeMetadata(business)}
		page.Schemas = append(page.Schemas, jsonld.BuildLocalBusiness(business))
		if faqs := faqList(site.FAQs); len(faqs) > 0 {
			page.Schemas = append(page.Schemas, jsonld.BuildFAQPage(faqs))
		}
		if rating, count := site.AverageRating(); count > 0 {
			page.Schemas = append(page.Schemas, jsonld.BuildAggregateRating(roundRating(rating), count, business))
		}
	case PageAbout:
		page = Page{Metadata: seo.PageMetadata(business, aboutTitle, aboutDescription, "/about", site.About.Full.Image)}
		page.Schemas = append(page.Schemas, jsonld.BuildLocalBusiness(business))
		for _, member := range site.Team {
			page.Schemas = append(page.Schemas, jsonld.BuildPerson(personSubject(business, member), business))
		}
		page.Schemas = append(page.Schemas, jsonld.BuildBreadcrumbList(breadcrumbs(business, crumb{"About", "/about"})))
	case PageTreatments:
		page = Page{Metadata: seo.PageMetadata(business, treatmentsTitle, treatmentsDescription, "/treatments", "")}
		page.Schemas = append(page.Schemas, jsonld.BuildBreadcrumbList(breadcrumbs(business, crumb{"Treatments", "/treatments"})))
		for _, svc := range site.Services {
			page.Schemas = append(page.Schemas, jsonld.BuildService(serviceSubject(business, svc), business))
		}
	case PageTreatment:
		svc, ok := site.ServiceBySlug(slug)
		if !ok {
			return Page{}, ErrServiceNotFound
		}
		page = Page{Metadata: seo.ServiceMetadata(business, svc)}
		page.Schemas = append(page.Schemas,
			jsonld.BuildService(serviceSubject(business, svc), business),
			jsonld.BuildBreadcrumbList(breadcrumbs(business,
				crumb{"Treatments", "/treatments"},
				crumb{svc.Name, ""},
			)),
		)
	default:
		return Page{}, ErrPageNotFound
	}

	page.Name = name
	checkSchemas(page.Schemas...)
	return page, nil
}

// schemaBuilder produces one document for the /schema endpoint. key selects the
// subject where the type needs one.
type schemaBuilder func(site *content.Site, key string) (jsonld.Object, error)

var schemaBuilders = map[string]schemaBuilder{
	"local-business": func(site *content.Site, _ string) (jsonld.Object, error) {
		return jsonld.BuildLocalBusiness(site.Business), nil
	},
	"service": func(site *content.Site, key string) (jsonld.Object, error) {
		svc, ok := site.ServiceBySlug(key)
		if !ok {
			return nil, ErrServiceNotFound
		}
		return jsonld.BuildService(serviceSubject(site.Business, svc), site.Business), nil
	},
	"person": func(site *content.Site, key string) (jsonld.Object, error) {
		member, ok := site.TeamMemberByID(key)
		if !ok {
			return nil, ErrSchemaNotFound
		}
		return jsonld.BuildPerson(personSubject(site.Business, member), site.Business), nil
	},
	"review": func(site *content.Site, key string) (jsonld.Object, error) {
		for _, t := range site.Testimonials {
			if strings.EqualFold(t.Author, key) {
				return jsonld.BuildReview(jsonld.Review{
					Author:        t.Author,
					Rating:        t.Rating,
					ReviewBody:    t.Body,
					DatePublished: t.DatePublished,
				}, site.Business), nil
			}
		}
		return nil, ErrSchemaNotFound
	},
	"faq-page": func(site *content.Site, _ string) (jsonld.Object, error) {
		return jsonld.BuildFAQPage(faqList(site.FAQs)), nil
	},
	"breadcrumb-list": func(site *content.Site, key string) (jsonld.Object, error) {
		switch {
		case key == PageAbout:
			return jsonld.BuildBreadcrumbList(breadcrumbs(site.Business, crumb{"About", "/about"})), nil
		case key == PageTreatments:
			return jsonld.BuildBreadcrumbList(breadcrumbs(site.Business, crumb{"Treatments", "/treatments"})), nil
		case strings.HasPrefix(key, PageTreatments+"/"):
			svc, ok := site.ServiceBySlug(strings.TrimPrefix(key, PageTreatments+"/"))
			if !ok {
				return nil, ErrServiceNotFound
			}
			return jsonld.BuildBreadcrumbList(breadcrumbs(site.Business,
				crumb{"Treatments", "/treatments"},
				crumb{svc.Name, ""},
			)), nil
		}
		return nil, ErrPageNotFound
	},
	"aggregate-rating": func(site *content.Site, _ string) (jsonld.Object, error) {
		rating, count := site.AverageRating()
		if count == 0 {
			return nil, ErrSchemaNotFound
		}
		return jsonld.BuildAggregateRating(roundRating(rating), count, site.Business), nil
	},
}

// SchemaTypes lists the type tags accepted by Schema.
func SchemaTypes() []string {
	tags := make([]string, 0, len(schemaBuilders))
	for tag := range schemaBuilders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Schema builds a single structured-data document by kebab-case type tag.
func (s *SiteService) Schema(tag, key string) (jsonld.Object, error) {
	build, ok := schemaBuilders[tag]
	if !ok {
		return nil, ErrSchemaNotFound
	}
	obj, err := build(s.Site(), key)
	if err != nil {
		return nil, err
	}
	checkSchemas(obj)
	return obj, nil
}

// checkSchemas logs documents that do not match their JSON Schema. Serving
// continues regardless.
func checkSchemas(objs ...jsonld.Object) {
	for _, obj := range objs {
		if err := jsonld.Validate(obj); err != nil {
			log.Printf("jsonld_validation type=%v err=%v", obj["@type"], err)
		}
	}
}

type crumb struct {
	name string
	path string
}

// breadcrumbs prefixes trail with the home crumb. A crumb without a path is
// the current page and carries no link.
func breadcrumbs(business entity.BusinessProfile, trail ...crumb) jsonld.BreadcrumbList {
	list := jsonld.BreadcrumbList{{Name: "Home", URL: business.AbsoluteURL("/")}}
	for _, c := range trail {
		item := jsonld.Crumb{Name: c.name}
		if c.path != "" {
			item.URL = business.AbsoluteURL(c.path)
		}
		list = append(list, item)
	}
	return list
}

func serviceSubject(business entity.BusinessProfile, svc entity.Service) jsonld.Service {
	subject := jsonld.Service{
		Name:        svc.Name,
		Description: svc.Description,
		URL:         business.AbsoluteURL("/treatments/" + svc.Slug),
		ServiceType: svc.ServiceType,
		AreaServed:  business.AreaServed,
	}
	if svc.Image != "" {
		subject.Image = business.AbsoluteURL(svc.Image)
	}
	if price := ParsePrice(svc.Price); price != "" {
		subject.Offers = &jsonld.Offer{Price: price}
	}
	return subject
}

func personSubject(business entity.BusinessProfile, member entity.TeamMember) jsonld.Person {
	person := jsonld.Person{
		Name:  member.Name,
		Title: member.Title,
		Bio:   member.Bio,
		Email: member.Email,
		Phone: member.Phone,
	}
	if member.Image != "" {
		person.Image = business.AbsoluteURL(member.Image)
	}
	return person
}

func faqList(items []entity.FAQItem) jsonld.FAQList {
	faqs := make(jsonld.FAQList, 0, len(items))
	for _, item := range items {
		faqs = append(faqs, jsonld.FAQ{Question: item.Question, Answer: item.Answer})
	}
	return faqs
}

// ParsePrice reduces a display price such as "R850" or "R1 200.00" to its
// numeric part. It returns "" when no digits remain.
func ParsePrice(display string) string {
	price := strings.Trim(priceChars.ReplaceAllString(display, ""), ".")
	if strings.IndexAny(price, "0123456789") < 0 {
		return ""
	}
	return price
}

func roundRating(value float64) float64 {
	return float64(int(value*10+0.5)) / 10
}
