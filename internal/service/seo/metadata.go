// Package seo builds the page-level metadata (title, canonical URL,
// OpenGraph and Twitter cards) rendered into each page head.
package seo

import (
	"strings"

	"github.com/octobees/wellness-site/internal/entity"
)

const (
	imageWidth  = 1200
	imageHeight = 630

	twitterCard = "summary_large_image"
)

// Image is an OpenGraph image reference.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

// OpenGraph is the og:* block of a page.
type OpenGraph struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	SiteName      string   `json:"site_name"`
	Type          string   `json:"type"`
	PublishedTime string   `json:"published_time,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Images        []Image  `json:"images,omitempty"`
}

// Twitter is the twitter:* block of a page.
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
}

// Metadata describes everything a page head needs apart from structured data.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Canonical   string    `json:"canonical"`
	OpenGraph   OpenGraph `json:"open_graph"`
	Twitter     Twitter   `json:"twitter"`
}

// Post is the subset of a blog post used for its metadata.
type Post struct {
	Title       string
	Description string
	Slug        string
	Date        string
	Author      string
	Image       string
}

// PageMetadata builds metadata for an ordinary page. The page title is suffixed
// with the business name; image falls back to the business logo.
func PageMetadata(business entity.BusinessProfile, title, description, path, image string) Metadata {
	url := business.URL + path
	if image == "" {
		image = business.Logo
	}
	ogImage := ""
	if image != "" {
		ogImage = absoluteImage(business, image)
	}
	return build(business, pageInfo{
		fullTitle:   title + " | " + business.Name,
		title:       title,
		description: description,
		url:         url,
		ogType:      "website",
		image:       ogImage,
		imageAlt:    title,
	})
}

// HomeMetadata builds metadata for the landing page.
func HomeMetadata(business entity.BusinessProfile) Metadata {
	fullTitle := business.Name
	if business.Tagline != "" {
		fullTitle += " | " + business.Tagline
	}
	image := ""
	if business.Logo != "" {
		image = absoluteImage(business, business.Logo)
	}
	return build(business, pageInfo{
		fullTitle:   fullTitle,
		title:       business.Name,
		description: business.Description,
		url:         business.URL,
		ogType:      "website",
		image:       image,
		imageAlt:    business.Name,
	})
}

// ServiceMetadata builds metadata for a treatment detail page.
func ServiceMetadata(business entity.BusinessProfile, service entity.Service) Metadata {
	return PageMetadata(business, service.Name, service.Description, "/treatments/"+service.Slug, service.Image)
}

// BlogMetadata builds metadata for the blog index.
func BlogMetadata(business entity.BusinessProfile) Metadata {
	return PageMetadata(business, "Blog", "Latest news, tips, and insights from "+business.Name, "/blog", "")
}

// BlogPostMetadata builds article metadata for a single post.
func BlogPostMetadata(business entity.BusinessProfile, post Post) Metadata {
	image := ""
	if post.Image != "" {
		image = absoluteImage(business, post.Image)
	}
	meta := build(business, pageInfo{
		fullTitle:   post.Title + " | " + business.Name,
		title:       post.Title,
		description: post.Description,
		url:         business.URL + "/blog/" + post.Slug,
		ogType:      "article",
		image:       image,
		imageAlt:    post.Title,
	})
	meta.OpenGraph.PublishedTime = post.Date
	if post.Author != "" {
		meta.OpenGraph.Authors = []string{post.Author}
	}
	return meta
}

type pageInfo struct {
	fullTitle   string
	title       string
	description string
	url         string
	ogType      string
	image       string
	imageAlt    string
}

func build(business entity.BusinessProfile, page pageInfo) Metadata {
	meta := Metadata{
		Title:       page.fullTitle,
		Description: page.description,
		Canonical:   page.url,
		OpenGraph: OpenGraph{
			Title:       page.title,
			Description: page.description,
			URL:         page.url,
			SiteName:    business.Name,
			Type:        page.ogType,
		},
		Twitter: Twitter{
			Card:        twitterCard,
			Title:       page.title,
			Description: page.description,
		},
	}
	if page.image != "" {
		meta.OpenGraph.Images = []Image{{URL: page.image, Width: imageWidth, Height: imageHeight, Alt: page.imageAlt}}
		meta.Twitter.Images = []string{page.image}
	}
	return meta
}

// absoluteImage keeps absolute image URLs and prefixes relative ones with the site URL.
func absoluteImage(business entity.BusinessProfile, image string) string {
	if strings.HasPrefix(image, "http") {
		return image
	}
	return business.URL + image
}
