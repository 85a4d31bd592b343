package jsonld

import (
	"math"
	"sort"
	"strings"

	"github.com/octobees/wellness-site/internal/entity"
)

// Object is a JSON-LD document. Values are restricted to JSON-native Go types
// (map[string]any, []any, string, float64, bool) so a JSON round trip is lossless.
type Object = map[string]any

const (
	SchemaContext = "https://schema.org"

	TypeLocalBusiness   = "LocalBusiness"
	TypeService         = "Service"
	TypePerson          = "Person"
	TypeReview          = "Review"
	TypeBlogPosting     = "BlogPosting"
	TypeFAQPage         = "FAQPage"
	TypeBreadcrumbList  = "BreadcrumbList"
	TypeAggregateRating = "AggregateRating"

	// DefaultCurrency applies to offers supplied without a currency.
	DefaultCurrency = "ZAR"

	bestRating  = 5
	worstRating = 1
)

func newObject(schemaType any) Object {
	return Object{
		"@context": SchemaContext,
		"@type":    schemaType,
	}
}

// finite reports whether v can be encoded as a JSON number.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func setString(obj Object, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		obj[key] = value
	}
}

// organizationRef builds the back-reference to the business; nil when the
// business carries neither a URL nor a name.
func organizationRef(business entity.BusinessProfile, schemaType string) Object {
	ref := Object{}
	setString(ref, "@id", business.OrganizationID())
	setString(ref, "name", business.Name)
	if len(ref) == 0 {
		return nil
	}
	ref["@type"] = schemaType
	return ref
}

// BuildLocalBusiness describes the practice itself.
func BuildLocalBusiness(business entity.BusinessProfile) Object {
	obj := newObject(businessTypes(business.SchemaTypes))
	setString(obj, "@id", business.OrganizationID())
	setString(obj, "name", business.Name)
	setString(obj, "url", business.URL)
	setString(obj, "description", business.Description)
	setString(obj, "telephone", business.Phone)
	setString(obj, "email", business.Email)

	if address := postalAddress(business.Address); address != nil {
		obj["address"] = address
	}
	if geo := business.Geo; geo != nil && geo.Latitude != 0 && geo.Longitude != 0 && finite(geo.Latitude) && finite(geo.Longitude) {
		obj["geo"] = Object{
			"@type":     "GeoCoordinates",
			"latitude":  geo.Latitude,
			"longitude": geo.Longitude,
		}
	}
	if specs := openingHoursSpecification(business.Hours); len(specs) > 0 {
		obj["openingHoursSpecification"] = specs
	}
	if sameAs := socialProfiles(business.Social); len(sameAs) > 0 {
		obj["sameAs"] = sameAs
	}
	setString(obj, "priceRange", business.PriceRange)
	if business.Logo != "" {
		setString(obj, "image", business.AbsoluteURL(business.Logo))
	}
	return obj
}

func businessTypes(types []string) any {
	cleaned := make([]any, 0, len(types))
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	switch len(cleaned) {
	case 0:
		return TypeLocalBusiness
	case 1:
		return cleaned[0]
	default:
		return cleaned
	}
}

func postalAddress(addr entity.Address) Object {
	obj := Object{}
	street := addr.Street
	if area := strings.TrimSpace(addr.Area); area != "" && street != "" {
		street = street + ", " + area
	}
	setString(obj, "streetAddress", street)
	setString(obj, "addressLocality", addr.City)
	setString(obj, "addressRegion", addr.Region)
	setString(obj, "postalCode", addr.PostalCode)
	setString(obj, "addressCountry", addr.Country)
	if len(obj) == 0 {
		return nil
	}
	obj["@type"] = "PostalAddress"
	return obj
}

func openingHoursSpecification(hours entity.WeeklyHours) []any {
	specs := make([]any, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		opens, closes, ok := hours.Range(day)
		if !ok {
			continue
		}
		specs = append(specs, Object{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": capitalize(day),
			"opens":     opens,
			"closes":    closes,
		})
	}
	return specs
}

func socialProfiles(social map[string]string) []any {
	platforms := make([]string, 0, len(social))
	for platform, link := range social {
		if strings.TrimSpace(link) != "" {
			platforms = append(platforms, platform)
		}
	}
	sort.Strings(platforms)

	links := make([]any, 0, len(platforms))
	for _, platform := range platforms {
		links = append(links, strings.TrimSpace(social[platform]))
	}
	return links
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildService describes a treatment offered by the business.
func BuildService(service Service, business entity.BusinessProfile) Object {
	obj := newObject(TypeService)
	setString(obj, "name", service.Name)
	setString(obj, "description", service.Description)

	provider := business
	if service.Provider != "" {
		provider.Name = service.Provider
	}
	if ref := organizationRef(provider, "Organization"); ref != nil {
		obj["provider"] = ref
	}

	setString(obj, "url", service.URL)
	setString(obj, "serviceType", service.ServiceType)
	setString(obj, "areaServed", service.AreaServed)
	setString(obj, "image", service.Image)

	if service.Offers != nil && strings.TrimSpace(service.Offers.Price) != "" {
		currency := strings.TrimSpace(service.Offers.PriceCurrency)
		if currency == "" {
			currency = DefaultCurrency
		}
		obj["offers"] = Object{
			"@type":         "Offer",
			"price":         strings.TrimSpace(service.Offers.Price),
			"priceCurrency": currency,
		}
	}
	return obj
}

// BuildPerson describes a team member working for the business.
func BuildPerson(person Person, business entity.BusinessProfile) Object {
	obj := newObject(TypePerson)
	setString(obj, "name", person.Name)
	setString(obj, "jobTitle", person.Title)
	if ref := organizationRef(business, "Organization"); ref != nil {
		obj["worksFor"] = ref
	}
	setString(obj, "description", person.Bio)
	setString(obj, "image", person.Image)
	setString(obj, "email", person.Email)
	setString(obj, "telephone", person.Phone)
	return obj
}

// BuildReview describes one testimonial about the business.
func BuildReview(review Review, business entity.BusinessProfile) Object {
	obj := newObject(TypeReview)
	if review.Author != "" {
		obj["author"] = Object{"@type": TypePerson, "name": review.Author}
	}
	if review.Rating != 0 && finite(review.Rating) {
		obj["reviewRating"] = ratingObject("Rating", review.Rating)
	}
	setString(obj, "reviewBody", review.ReviewBody)
	if ref := organizationRef(business, TypeLocalBusiness); ref != nil {
		obj["itemReviewed"] = ref
	}
	setString(obj, "datePublished", review.DatePublished)
	return obj
}

func ratingObject(schemaType string, value float64) Object {
	return Object{
		"@type":       schemaType,
		"ratingValue": value,
		"bestRating":  float64(bestRating),
		"worstRating": float64(worstRating),
	}
}

// BuildBlogPosting describes an article published by the business.
func BuildBlogPosting(post BlogPosting, business entity.BusinessProfile) Object {
	obj := newObject(TypeBlogPosting)
	pageID := ""
	if post.Slug != "" && business.URL != "" {
		pageID = business.AbsoluteURL("/blog/" + post.Slug)
	}
	setString(obj, "@id", pageID)
	setString(obj, "headline", post.Title)
	setString(obj, "datePublished", post.Date)
	if post.Author != "" {
		obj["author"] = Object{"@type": TypePerson, "name": post.Author}
	}

	if publisher := organizationRef(business, "Organization"); publisher != nil {
		if business.Logo != "" && business.URL != "" {
			publisher["logo"] = Object{
				"@type": "ImageObject",
				"url":   business.AbsoluteURL(business.Logo),
			}
		}
		obj["publisher"] = publisher
	}
	if pageID != "" {
		obj["mainEntityOfPage"] = Object{"@type": "WebPage", "@id": pageID}
	}

	setString(obj, "description", post.Description)
	setString(obj, "image", post.Image)
	setString(obj, "dateModified", post.DateModified)
	return obj
}

// BuildFAQPage lists questions and answers.
func BuildFAQPage(faqs FAQList) Object {
	obj := newObject(TypeFAQPage)
	entities := make([]any, 0, len(faqs))
	for _, faq := range faqs {
		question := Object{"@type": "Question"}
		setString(question, "name", faq.Question)
		answer := Object{"@type": "Answer"}
		setString(answer, "text", faq.Answer)
		question["acceptedAnswer"] = answer
		entities = append(entities, question)
	}
	if len(entities) > 0 {
		obj["mainEntity"] = entities
	}
	return obj
}

// BuildBreadcrumbList describes the navigation trail to a page.
func BuildBreadcrumbList(crumbs BreadcrumbList) Object {
	obj := newObject(TypeBreadcrumbList)
	items := make([]any, 0, len(crumbs))
	for i, crumb := range crumbs {
		item := Object{
			"@type":    "ListItem",
			"position": float64(i + 1),
		}
		setString(item, "name", crumb.Name)
		setString(item, "item", crumb.URL)
		items = append(items, item)
	}
	if len(items) > 0 {
		obj["itemListElement"] = items
	}
	return obj
}

// BuildAggregateRating attaches an overall rating to the business. A rating
// that is not a finite number leaves aggregateRating out.
func BuildAggregateRating(ratingValue float64, reviewCount int, business entity.BusinessProfile) Object {
	obj := newObject(TypeLocalBusiness)
	setString(obj, "@id", business.OrganizationID())
	setString(obj, "name", business.Name)
	if !finite(ratingValue) {
		return obj
	}
	rating := ratingObject(TypeAggregateRating, ratingValue)
	rating["reviewCount"] = float64(reviewCount)
	obj["aggregateRating"] = rating
	return obj
}

// Build dispatches subject to its builder.
func Build(subject Subject, business entity.BusinessProfile) Object {
	switch s := subject.(type) {
	case Service:
		return BuildService(s, business)
	case Person:
		return BuildPerson(s, business)
	case Review:
		return BuildReview(s, business)
	case BlogPosting:
		return BuildBlogPosting(s, business)
	case FAQList:
		return BuildFAQPage(s)
	case BreadcrumbList:
		return BuildBreadcrumbList(s)
	case AggregateRating:
		return BuildAggregateRating(s.RatingValue, s.ReviewCount, business)
	default:
		return BuildLocalBusiness(business)
	}
}
