// Package web serves the landing page and its static assets.
package web

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

//go:embed all:static
var assets embed.FS

// Assets serves the embedded files under /static/.
func Assets() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Index renders the landing page with one button per sport. Tournament data
// is loaded client-side from /api/tournaments/{sport}.
func Index(sports []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Sports Tournament Aggregator</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header>
<h1>Upcoming Tournaments</h1>
<p class="subtitle">Corporate to International, refreshed on every request.</p>
</header>
<nav id="sports">
`)
		for _, s := range sports {
			esc := templ.EscapeString(s)
			b.WriteString(`<button class="sport" data-sport="`)
			b.WriteString(esc)
			b.WriteString(`">`)
			b.WriteString(esc)
			b.WriteString("</button>\n")
		}
		b.WriteString(`</nav>
<section id="status" aria-live="polite"></section>
<main id="tournaments"></main>
<script src="/static/app.js"></script>
</body>
</html>
`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
