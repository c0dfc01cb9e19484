package ui

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"mbticonsultant/adapters/assets"
	"mbticonsultant/app"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/internal/metrics"
)

type staticSource struct {
	table *periodic.Table
}

func (s staticSource) Load(ctx context.Context) (*periodic.Table, error) {
	return s.table, nil
}

func fixtureTable() *periodic.Table {
	return &periodic.Table{
		Source: "fixture",
		Rows: []periodic.Row{
			{TypeCode: "INTJ", Category: "Analyst", Personality: "Architect", Group: "1", GroupName: "Strengths", Period: "1", AtomicNumber: "1", Symbol: "Lo", ElementName: "Logic", Excerpt: "Cold logic", Color: "#9DC3E6"},
			{TypeCode: "INTJ", Category: "Analyst", Personality: "Architect", Group: "2", GroupName: `Inner\nWorld`, Period: "1", AtomicNumber: "2", Symbol: "Pl", ElementName: `Long-term\nPlanning`, Excerpt: "Plans", Color: "#F4B183"},
			{TypeCode: "INTJ", Category: "Analyst", Personality: "Architect", Group: "1", GroupName: "Strengths", Period: "2", AtomicNumber: "3", Symbol: "In", ElementName: "Independence", Excerpt: "Alone", Color: "#9DC3E6"},
			{TypeCode: "INFP", Category: "Diplomat", Personality: "Mediator", Group: "1", GroupName: "Strengths", Period: "1", AtomicNumber: "1", Symbol: "Em", ElementName: "Empathy", Excerpt: "Feels", Color: "#A9D18E"},
			{TypeCode: "nan"},
		},
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	iconDir := filepath.Join(dir, "icons")
	require.NoError(t, os.Mkdir(iconDir, 0o755))
	writePNG(t, filepath.Join(iconDir, "INTJ.png"))

	logger := internal.NewNopLogger()
	store := assets.NewStore(assets.Config{IconDir: iconDir, PairsImage: filepath.Join(dir, "missing.png")}, logger)
	service := app.NewRenderService(staticSource{table: fixtureTable()}, store, metrics.New(), logger)

	server, err := NewServer(service, store, Options{GinMode: gin.TestMode, Defaults: periodic.DefaultStyle()}, logger)
	require.NoError(t, err)
	return server
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndexDefaultsToFirstType(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The MBTI Consultant")
	assert.Contains(t, body, "Diplomat - Mediator")
	assert.Contains(t, body, "16personalities.com")
	assert.Contains(t, body, "No icon for INFP")
	assert.Contains(t, body, "Image unavailable")
}

func TestIndexRendersSelectedType(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?type=INTJ&font=Times")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Analyst - Architect")
	assert.Equal(t, 3, strings.Count(body, `<rect class="cell"`))
	assert.Equal(t, 3, strings.Count(body, `class="tooltip"`))
	assert.Contains(t, body, `src="/icons/INTJ"`)
	assert.Contains(t, body, `<option value="Times" selected>`)
	assert.Contains(t, body, "Cold logic")
	assert.Contains(t, body, "/chart.png?font=Times")
}

func TestIndexErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"unknown type", "/?type=XXXX", http.StatusNotFound},
		{"unknown font", "/?font=Comic+Sans", http.StatusBadRequest},
		{"unparseable scale", "/?scale=big", http.StatusBadRequest},
		{"negative scale", "/?scale=-1", http.StatusBadRequest},
		{"zero scale", "/?scale=0", http.StatusBadRequest},
		{"infinite scale", "/?scale=Inf", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), "Something went wrong")
		})
	}
}

func TestAPITypes(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/types")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, `["INFP","INTJ"]`, gjson.Get(body, "types").Raw)
	assert.Equal(t, int64(len(periodic.Fonts)), gjson.Get(body, "fonts.#").Int())
}

func TestAPILayout(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/layout?type=INTJ")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, gjson.Get(body, "renderId").Exists())
	assert.Equal(t, int64(214), gjson.Get(body, "layout.width").Int())
	assert.Equal(t, int64(321), gjson.Get(body, "layout.height").Int())
	assert.Equal(t, `["1","2","3"]`, gjson.Get(body, "layout.periods").Raw)
	assert.Equal(t, "Inner World", gjson.Get(body, "layout.groupNames.1").String())
	assert.Equal(t, int64(8), gjson.Get(body, "layout.tooltip.fields.#").Int())
	assert.True(t, gjson.Get(body, "icon.available").Bool())
	assert.False(t, gjson.Get(body, "supplementary.available").Bool())
}

func TestAPILayoutRejectsZeroScale(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/layout?type=INTJ&scale=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", gjson.Get(rec.Body.String(), "code").String())
}

func TestAPILayoutUnknownType(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/layout?type=ZZZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", gjson.Get(rec.Body.String(), "code").String())
}

func TestChartExport(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/chart.svg?type=INTJ")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "mbti-intj.svg")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/chart.svg?type=INTJ", nil)
	req.Header.Set("If-None-Match", etag)
	cached := httptest.NewRecorder()
	s.Handler().ServeHTTP(cached, req)
	assert.Equal(t, http.StatusNotModified, cached.Code)

	rec = get(t, s, "/chart.png?type=INTJ")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 214, img.Bounds().Dx())
}

func TestIconRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/icons/INTJ")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = get(t, s, "/icons/INFP")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No icon for INFP")

	rec = get(t, s, "/icons/..")
	assert.NotEqual(t, http.StatusOK, rec.Code)

	rec = get(t, s, "/assets/pairs")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/static/css/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".toolbar")
}
