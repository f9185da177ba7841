package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/armoury/internal/factory"
	"github.com/mcoot/armoury/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()
	return newWebTestServerWithStatic(t, "") // No static files
}

func newWebTestServerWithStatic(t *testing.T, staticDir string) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := factory.NewTestApp(t)

	router := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		ArmourService: app.ArmourService,
		WeaponService: app.WeaponService,
		SharedService: app.SharedService,
		Metrics:       app.Metrics,
		StaticDir:     staticDir,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
	}
}

// get makes a GET request as htmx would
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("HX-Request", "true")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

func TestHomePageLoadsTabs(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "title", "Armoury")
	assertContainsElement(t, doc, `#tabs[hx-get="/data/tabs"][hx-trigger="load"]`)
	assertContainsElement(t, doc, "#info-popover[popover]")
	assertNotContainsElement(t, doc, `link[rel="stylesheet"]`)
}

func TestHomePageLinksStylesheetWhenStaticConfigured(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o600))
	ts := newWebTestServerWithStatic(t, dir)

	doc := parseHTML(ts.get("/").Body)
	assertContainsElement(t, doc, `link[href="/static/styles.css"]`)

	rr := ts.get("/static/styles.css")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "body{}", rr.Body.String())
}

func TestArmourTable(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/armour-table")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 7, doc.Find("thead th").Length())
	assert.Equal(t, 13, doc.Find("tbody tr").Length())

	button := doc.Find(`button[hx-get="/data/armour-description/studded-leather"]`)
	require.Equal(t, 1, button.Length())
	assert.Equal(t, "Studded Leather", button.Text())
	assert.Equal(t, "#info-popover", button.AttrOr("hx-target", ""))
	assert.Equal(t, "info-popover", button.AttrOr("popovertarget", ""))
}

func TestArmourDescription(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/armour-description/studded-leather")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h2", "Studded Leather")
	assertContainsText(t, doc, "p", "close-set rivets")
	assertContainsElement(t, doc, `button.destructive[popovertargetaction="hide"]`)
}

func TestArmourDescriptionNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/armour-description/vibranium-plate")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<p>No description found</p>", rr.Body.String())
}

func TestWeaponTable(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/weapon-table")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 6, doc.Find("thead th").Length())
	assert.Equal(t, 37, doc.Find("tbody tr").Length())

	dagger := doc.Find("tbody tr").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("td").First().Text() == "Dagger"
	})
	require.Equal(t, 1, dagger.Length())
	assert.Equal(t, "1 lb.", dagger.Find("td").Eq(3).Text())
	assert.Equal(t, "1d4 piercing damage", dagger.Find("td").Eq(4).Text())

	buttons := dagger.Find("td.properties button")
	require.Equal(t, 3, buttons.Length())
	assert.Equal(t, "Finesse", buttons.Eq(0).Text())
	assert.Equal(t, "light", buttons.Eq(1).Text())
	assert.Equal(t, "thrown (range 20/60)", buttons.Eq(2).Text())
	assert.Equal(t, "/data/weapon-property/thrown-range", buttons.Eq(2).AttrOr("hx-get", ""))
}

func TestWeaponProperty(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/weapon-property/finesse")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("h2").Length())
	assertContainsText(t, doc, "h2", "Finesse")
	assertContainsText(t, doc, "p", "Strength or Dexterity")
}

func TestWeaponPropertyCombinedRange(t *testing.T) {
	ts := newWebTestServer(t)

	tests := []struct {
		slug    string
		heading string
	}{
		{"ammunition-range", "Ammunition"},
		{"thrown-range", "Thrown"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			doc := parseHTML(ts.get("/data/weapon-property/" + tt.slug).Body)

			headings := doc.Find("h2")
			require.Equal(t, 2, headings.Length())
			assert.Equal(t, tt.heading, headings.Eq(0).Text())
			assert.Equal(t, "Range", headings.Eq(1).Text())
		})
	}
}

func TestWeaponPropertyNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/weapon-property/glowing")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<p>Property not found</p>", rr.Body.String())
}

func TestTabsDefaultsToArmour(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/tabs")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 2, doc.Find(`.tab-list button[role="tab"]`).Length())
	assertContainsText(t, doc, `button.selected[aria-selected="true"]`, "Armour")
	assertContainsElement(t, doc, `button[hx-get="/data/tabs/weapons"]`)
	assertContainsText(t, doc, "#tab-content h2", "Armour")
	assertContainsElement(t, doc, "#tab-content table.armour-table")
}

func TestTabWeapons(t *testing.T) {
	ts := newWebTestServer(t)

	doc := parseHTML(ts.get("/data/tabs/weapons").Body)
	assertContainsText(t, doc, "button.selected", "Weapons")
	assertContainsElement(t, doc, "#tab-content table.weapon-table")
	assertNotContainsElement(t, doc, "#tab-content table.armour-table")
}

func TestUnknownTab(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/data/tabs/spells")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, "button.selected")
	assertContainsText(t, doc, "#tab-content", "Select a tab to view data")
}
