package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/octobees/wellness-site/internal/service/jsonld"
)

var headTemplate = template.Must(template.New("head").Parse(`<title>{{.Metadata.Title}}</title>
<meta name="description" content="{{.Metadata.Description}}">
<link rel="canonical" href="{{.Metadata.Canonical}}">
<meta property="og:title" content="{{.Metadata.OpenGraph.Title}}">
<meta property="og:description" content="{{.Metadata.OpenGraph.Description}}">
<meta property="og:url" content="{{.Metadata.OpenGraph.URL}}">
<meta property="og:site_name" content="{{.Metadata.OpenGraph.SiteName}}">
<meta property="og:type" content="{{.Metadata.OpenGraph.Type}}">
{{- with .Metadata.OpenGraph.PublishedTime}}
<meta property="article:published_time" content="{{.}}">
{{- end}}
{{- range .Metadata.OpenGraph.Authors}}
<meta property="article:author" content="{{.}}">
{{- end}}
{{- range .Metadata.OpenGraph.Images}}
<meta property="og:image" content="{{.URL}}">
<meta property="og:image:width" content="{{.Width}}">
<meta property="og:image:height" content="{{.Height}}">
<meta property="og:image:alt" content="{{.Alt}}">
{{- end}}
<meta name="twitter:card" content="{{.Metadata.Twitter.Card}}">
<meta name="twitter:title" content="{{.Metadata.Twitter.Title}}">
<meta name="twitter:description" content="{{.Metadata.Twitter.Description}}">
{{- range .Metadata.Twitter.Images}}
<meta name="twitter:image" content="{{.}}">
{{- end}}
{{.Scripts}}`))

// RenderHead renders the page's meta tags followed by its JSON-LD script elements.
func RenderHead(page Page) ([]byte, error) {
	scripts, err := jsonld.ScriptTags(page.Schemas...)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = headTemplate.Execute(&buf, struct {
		Page
		Scripts template.HTML
	}{Page: page, Scripts: scripts})
	if err != nil {
		return nil, fmt.Errorf("render head: %w", err)
	}
	return buf.Bytes(), nil
}
