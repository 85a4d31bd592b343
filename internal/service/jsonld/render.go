package jsonld

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// MIMEType is the media type of a standalone JSON-LD document.
const MIMEType = "application/ld+json"

// Marshal serialises obj. encoding/json escapes <, > and & so the result is
// safe to embed inside a script element.
func Marshal(obj Object) ([]byte, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal json-ld: %w", err)
	}
	return data, nil
}

// ScriptTags renders each object as a <script type="application/ld+json"> element.
func ScriptTags(objs ...Object) (template.HTML, error) {
	var buf bytes.Buffer
	for _, obj := range objs {
		data, err := Marshal(obj)
		if err != nil {
			return "", err
		}
		buf.WriteString(`<script type="` + MIMEType + `">`)
		buf.Write(data)
		buf.WriteString("</script>\n")
	}
	return template.HTML(buf.String()), nil
}
