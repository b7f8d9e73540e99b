package services

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"opportunity-discovery-api/core/interfaces"
)

func TestNewEnrichmentService(t *testing.T) {
	service := NewEnrichmentService(interfaces.Dependencies{})

	if service == nil {
		t.Error("NewEnrichmentService returned nil")
	}
}

func TestExtractFromURL_RejectsInvalidInput(t *testing.T) {
	service := NewEnrichmentService(interfaces.Dependencies{})

	for _, u := range []string{"", "http://", "about:blank"} {
		if result := service.extractFromURL(u); result != nil {
			t.Errorf("extractFromURL(%q) should return nil", u)
		}
	}
}

func TestExtractIdentifiers_InlineText(t *testing.T) {
	html := `<html><body>
		<p>Notice ID: ABC-24-0117</p>
		<p>Solicitation Number: 47QSMD20R0001</p>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}

	noticeID, solicitation := extractIdentifiers(doc.Find("body"))

	if noticeID != "ABC-24-0117" {
		t.Errorf("noticeID = %q, want ABC-24-0117", noticeID)
	}
	if solicitation != "47QSMD20R0001" {
		t.Errorf("solicitation = %q, want 47QSMD20R0001", solicitation)
	}
}

func TestExtractIdentifiers_DefinitionListPrecedence(t *testing.T) {
	html := `<html><body>
		<p>Notice ID: WRONG-1</p>
		<dl>
			<dt>Notice ID</dt><dd>RIGHT-2024-01</dd>
			<dt>Solicitation Number</dt><dd>SOL-2024-02</dd>
		</dl>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}

	noticeID, solicitation := extractIdentifiers(doc.Find("body"))

	if noticeID != "RIGHT-2024-01" {
		t.Errorf("noticeID = %q, definition list should win", noticeID)
	}
	if solicitation != "SOL-2024-02" {
		t.Errorf("solicitation = %q, want SOL-2024-02", solicitation)
	}
}

func TestExtractIdentifiers_NoMatches(t *testing.T) {
	html := `<html><body><p>Nothing useful here</p></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}

	noticeID, solicitation := extractIdentifiers(doc.Find("body"))

	if noticeID != "" || solicitation != "" {
		t.Errorf("expected empty identifiers, got %q / %q", noticeID, solicitation)
	}
}
