// Package document достаёт сырой текст заявки из загруженного файла.
package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	pdf "github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupportedFormat возвращается для расширений, которые не умеем читать.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrUnreadable — файл нужного формата, но повреждён.
	ErrUnreadable = errors.New("unreadable document")
)

// Formats — поддерживаемые расширения файлов.
var Formats = []string{".txt", ".docx", ".pdf", ".html", ".htm"}

// ExtractText возвращает текст файла без нормализации: её делает конвейер.
func ExtractText(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text", ".md":
		return decodePlain(data), nil
	case ".pdf":
		text, err = extractTextFromPDF(data)
	case ".docx":
		text, err = extractTextFromDocx(data)
	case ".html", ".htm":
		text, err = extractTextFromHTML(data)
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(Formats, ", "))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return text, nil
}

// decodePlain читает UTF-8, а невалидный UTF-8 считает выгрузкой в Windows-1251.
func decodePlain(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	out, err := charmap.Windows1251.NewDecoder().Bytes(data)
	if err != nil {
		return string(bytes.ToValidUTF8(data, []byte(" ")))
	}
	return string(out)
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	return buf.String(), nil
}

// maxDocxXMLBytes ограничивает распакованный word/document.xml.
var maxDocxXMLBytes int64 = 64 << 20

var (
	reDocxBreak = regexp.MustCompile(`<w:br[^>]*/>|<w:cr[^>]*/>`)
	reDocxTag   = regexp.MustCompile(`<[^>]+>`)
)

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		docXML, err = io.ReadAll(io.LimitReader(rc, maxDocxXMLBytes+1))
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		if int64(len(docXML)) > maxDocxXMLBytes {
			return "", fmt.Errorf("document.xml exceeds %d bytes", maxDocxXMLBytes)
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// абзац и разрыв строки дают перевод строки, остальная разметка выбрасывается
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = reDocxBreak.ReplaceAllString(xml, "\n")
	txt := reDocxTag.ReplaceAllString(xml, "")
	return html.UnescapeString(txt), nil
}

// extractTextFromHTML оставляет видимый текст, сохраняя границы блоков и
// номера пунктов упорядоченных списков.
func extractTextFromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("head, script, style, noscript, iframe, template").Remove()
	doc.Find("ol").Each(func(_ int, ol *goquery.Selection) {
		start := 1
		if v, ok := ol.Attr("start"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				start = n
			}
		}
		ol.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
			li.PrependHtml(fmt.Sprintf("%d. ", start+i))
		})
	})
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, tr, h1, h2, h3, h4, h5, h6, pre, blockquote").AppendHtml("\n")
	return doc.Text(), nil
}
