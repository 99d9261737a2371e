package skills

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/acadmentor/advisor/internal/catalog"
)

// ExtractText pulls plain text out of an uploaded resume by mime type.
func ExtractText(mime string, data []byte) (string, error) {
	switch mime {
	case "text/plain":
		return string(data), nil

	case "application/pdf":
		return extractPDFText(data)

	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return extractDocxText(data)

	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

func extractPDFText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(r, int64(r.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, bytes.NewReader(data)); err != nil {
		return "", err
	}
	r := bytes.NewReader(buf.Bytes())

	doc, err := docx.ReadDocxFromMemory(r, int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// ProfileFromText builds a StudentProfile by matching the career data's
// skill vocabulary against resume text. Matching is substring-based over the
// lowered text; a skill counts as technical or soft according to the roles
// that require it, technical winning when both do.
func ProfileFromText(text string, careers *catalog.CareerData) catalog.StudentProfile {
	low := strings.ToLower(text)

	technical := map[string]bool{}
	soft := map[string]bool{}
	for _, role := range careers.Roles {
		for _, s := range role.TechnicalSkills {
			if n := catalog.NormalizeSkill(s); n != "" && strings.Contains(low, n) {
				technical[n] = true
			}
		}
		for _, s := range role.SoftSkills {
			if n := catalog.NormalizeSkill(s); n != "" && strings.Contains(low, n) {
				soft[n] = true
			}
		}
	}
	for s := range technical {
		delete(soft, s)
	}

	return catalog.StudentProfile{
		TechnicalSkills: setToSorted(technical),
		SoftSkills:      setToSorted(soft),
	}
}

func setToSorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
