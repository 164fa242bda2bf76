package render

import "html/template"

var templates = template.Must(template.New("render").Parse(`
{{- define "placeholder" -}}
<div class="placeholder-div" style="background-color: #{{.Background}}; color: #{{.Text}};">
    <h3>{{.Label}}</h3>
</div>
{{- end -}}

{{- define "featured" -}}
{{if .Placeholder}}{{template "placeholder" .Placeholder}}{{else}}<img src="{{.Image}}" alt="{{.Title}}" class="preview-image">{{end}}
<div class="preview-card-content">
    <h3>{{.Title}}</h3>
    <p class="article-date">{{.DisplayDate}}</p>
    <p>{{.Excerpt}}</p>
    <a href="{{.Href}}" class="read-more">{{.ReadMore}}</a>
</div>
{{- end -}}

{{- define "card" -}}
<a href="{{.Href}}" class="article-card">
{{if .Placeholder}}{{template "placeholder" .Placeholder}}{{else}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
<div class="article-card-content">
    <h3>{{.Title}}</h3>
    <p class="article-date">{{.DisplayDate}}</p>
</div>
</a>
{{- end -}}

{{- define "empty" -}}
<p>{{.}}</p>
{{- end -}}
`))

type placeholderView struct {
	Background string
	Text       string
	Label      string
}

type cardView struct {
	Href        string
	Title       string
	Image       string
	DisplayDate string
	Excerpt     string
	ReadMore    string
	Placeholder *placeholderView
}
