package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tdstudios/storefront/internal/catalog"
)

type SitemapHandler struct {
	baseURL string
}

func NewSitemapHandler(baseURL string) *SitemapHandler {
	return &SitemapHandler{baseURL: baseURL}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// HandleSitemap renders sitemap.xml from the static routes plus every
// active catalog entry.
func (h *SitemapHandler) HandleSitemap(c echo.Context) error {
	today := time.Now().Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	add := func(path, changefreq, priority string) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + path,
			LastMod:    today,
			ChangeFreq: changefreq,
			Priority:   priority,
		})
	}

	add("/", "weekly", "1.0")
	add("/shop", "weekly", "0.9")
	add("/mylars", "weekly", "0.9")

	for _, p := range catalog.Merch() {
		if p.Active {
			add("/product/"+p.ID, "monthly", "0.7")
		}
	}
	for _, p := range catalog.CustomDesigns() {
		if p.Active {
			add("/mylars/"+p.ID, "monthly", "0.7")
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render sitemap")
	}

	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}
