// Package footer renders the site footer fragment.
package footer

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/AryanPandeyy/opencap.co/internal/web/site"
)

// Link is one external link in the footer's "Company" column.
type Link struct {
	Label string
	URL   string
}

// Links returns the footer's external links in display order.
func Links(s site.Site) []Link {
	return []Link{
		{Label: "Twitter", URL: s.TwitterURL},
		{Label: "GitHub", URL: s.GitHubURL},
		{Label: "Discord", URL: s.DiscordURL},
	}
}

// Footer returns the footer component: a "Company" heading with the external
// links, a home link carrying the site title, the tagline and the copyright line.
func Footer(s site.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.write(`<footer>`)
		ew.write(`<div><h4>Company</h4>`)
		for _, l := range Links(s) {
			ew.link(l.URL, l.Label)
		}
		ew.write(`</div>`)
		ew.write(`<div>`)
		ew.link(s.HomeURL, s.Title)
		ew.write(`<p>Not a lawyer.</p>`)
		ew.write(`<p>&copy; ` + templ.EscapeString(s.Title) + ` ` + strconv.Itoa(s.CopyrightYear) + `</p>`)
		ew.write(`</div>`)
		ew.write(`</footer>`)
		return ew.err
	})
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = fmt.Errorf("render footer: %w", err)
	}
}

func (e *errWriter) link(href, label string) {
	e.write(`<a href="` + templ.EscapeString(string(templ.URL(href))) + `">` + templ.EscapeString(label) + `</a>`)
}
