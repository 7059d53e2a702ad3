package footer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AryanPandeyy/opencap.co/internal/web/site"
)

func render(t *testing.T, s site.Site) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Footer(s).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestFooter_RendersLinksAndBranding(t *testing.T) {
	s := site.Default()
	html := render(t, s)

	for _, want := range []string{
		`<h4>Company</h4>`,
		`<a href="` + s.TwitterURL + `">Twitter</a>`,
		`<a href="` + s.GitHubURL + `">GitHub</a>`,
		`<a href="` + s.DiscordURL + `">Discord</a>`,
		`<a href="/#">OpenCap</a>`,
		`<p>Not a lawyer.</p>`,
		`&copy; OpenCap 2024`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("footer missing %q\n%s", want, html)
		}
	}
}

func TestFooter_LinkOrder(t *testing.T) {
	html := render(t, site.Default())
	tw := strings.Index(html, ">Twitter<")
	gh := strings.Index(html, ">GitHub<")
	dc := strings.Index(html, ">Discord<")
	if !(tw < gh && gh < dc) {
		t.Errorf("link order = %d, %d, %d; want Twitter, GitHub, Discord", tw, gh, dc)
	}
}

func TestFooter_EscapesConfiguredValues(t *testing.T) {
	s := site.Default()
	s.Title = `<script>alert(1)</script>`
	s.DiscordURL = `javascript:alert(1)`
	html := render(t, s)

	if strings.Contains(html, "<script>") {
		t.Errorf("title not escaped: %s", html)
	}
	if strings.Contains(html, `href="javascript:`) {
		t.Errorf("unsafe URL not sanitized: %s", html)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("closed pipe")
}

func TestFooter_WriterError(t *testing.T) {
	w := &failingWriter{}
	err := Footer(site.Default()).Render(context.Background(), w)
	if err == nil {
		t.Fatal("Render should return the writer error")
	}
	if w.n != 1 {
		t.Errorf("writes after failure = %d, want 1", w.n)
	}
}
