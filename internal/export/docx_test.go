package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readDocxPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open docx archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(raw)
	}
	t.Fatalf("part %s not found in archive", name)
	return ""
}

func TestDocxContainsHeadedSections(t *testing.T) {
	data, err := Docx("Baris pertama.\n\nBaris kedua.", "#skincare #glowing")
	if err != nil {
		t.Fatalf("Docx returned error: %v", err)
	}
	doc := readDocxPart(t, data, "word/document.xml")

	if !strings.Contains(doc, ">Script Konten<") {
		t.Fatal("document missing Script Konten heading")
	}
	if !strings.Contains(doc, ">Hashtags<") {
		t.Fatal("document missing Hashtags heading")
	}
	if !strings.Contains(doc, ">Baris pertama.<") || !strings.Contains(doc, ">Baris kedua.<") {
		t.Fatal("document missing script paragraphs")
	}
	if !strings.Contains(doc, ">#skincare #glowing<") {
		t.Fatal("document missing hashtag paragraph")
	}
	if got := strings.Count(doc, `w:val="Heading1"`); got != 2 {
		t.Fatalf("heading paragraph count = %d, want 2", got)
	}
	// The blank line must not become a paragraph.
	if got := strings.Count(doc, "<w:p>"); got != 5 {
		t.Fatalf("paragraph count = %d, want 5", got)
	}
}

func TestDocxEscapesMarkup(t *testing.T) {
	data, err := Docx("Diskon <50% & gratis ongkir>", "#promo")
	if err != nil {
		t.Fatalf("Docx returned error: %v", err)
	}
	doc := readDocxPart(t, data, "word/document.xml")
	if !strings.Contains(doc, "Diskon &lt;50% &amp; gratis ongkir&gt;") {
		t.Fatalf("markup not escaped:\n%s", doc)
	}
}

func TestDocxIsDeterministic(t *testing.T) {
	first, err := Docx("Script sama.", "#sama")
	if err != nil {
		t.Fatalf("Docx returned error: %v", err)
	}
	second, err := Docx("Script sama.", "#sama")
	if err != nil {
		t.Fatalf("Docx returned error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("identical input produced different archives")
	}
}

func TestDocxCarriesStylesAndProps(t *testing.T) {
	data, err := Docx("Isi.", "#tag")
	if err != nil {
		t.Fatalf("Docx returned error: %v", err)
	}
	styles := readDocxPart(t, data, "word/styles.xml")
	if !strings.Contains(styles, `w:styleId="Heading1"`) || !strings.Contains(styles, `w:styleId="Normal"`) {
		t.Fatal("styles part missing expected styles")
	}
	props := readDocxPart(t, data, "docProps/core.xml")
	if !strings.Contains(props, "Script Viral Generator") {
		t.Fatal("core properties missing creator")
	}
}
