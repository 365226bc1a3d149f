package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"scriptviral/internal/domain"
)

// DocxFilename is the download name used for exported documents.
const DocxFilename = "script-viral.docx"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const corePropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:creator>Script Viral Generator</dc:creator>
<dc:title>Script Konten Affiliate</dc:title>
<dc:description>Dihasilkan oleh Script Viral Generator</dc:description>
</cp:coreProperties>`

// stylesXML mirrors the original document styling: 16pt bold dark headings,
// 12pt gray body with 1.15 line spacing.
const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:styleId="Heading1">
<w:name w:val="Heading 1"/>
<w:qFormat/>
<w:pPr><w:spacing w:after="240"/></w:pPr>
<w:rPr><w:b/><w:color w:val="2E2E2E"/><w:sz w:val="32"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Normal" w:default="1">
<w:name w:val="Normal"/>
<w:qFormat/>
<w:pPr><w:spacing w:line="276" w:lineRule="auto" w:after="200"/></w:pPr>
<w:rPr><w:color w:val="595959"/><w:sz w:val="24"/></w:rPr>
</w:style>
</w:styles>`

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Docx builds a downloadable document with a "Script Konten" section holding
// one paragraph per non-empty script line and a "Hashtags" section holding
// the tag string. Output bytes are deterministic for equal input.
func Docx(script, hashtags string) ([]byte, error) {
	body := &strings.Builder{}
	body.WriteString(paragraph("Script Konten", "Heading1"))
	for _, line := range strings.Split(script, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		body.WriteString(paragraph(line, "Normal"))
	}
	body.WriteString(paragraph("Hashtags", "Heading1"))
	body.WriteString(paragraph(hashtags, "Normal"))

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", corePropsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML},
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, part := range parts {
		// Fixed headers keep the archive byte-identical across runs.
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("docx create %s: %v: %w", part.name, err, domain.ErrExportFailure)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("docx write %s: %v: %w", part.name, err, domain.ErrExportFailure)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx finalize: %v: %w", err, domain.ErrExportFailure)
	}
	return buf.Bytes(), nil
}

func paragraph(text, style string) string {
	return `<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr><w:r><w:t xml:space="preserve">` +
		xmlEscaper.Replace(text) + `</w:t></w:r></w:p>`
}
