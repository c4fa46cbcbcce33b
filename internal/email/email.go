// Package email decodes .eml receipt emails into raw documents. The
// body is merged into a single HTML-stripped plain text blob; header
// metadata rides along for the store and date extractors.
package email

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"golang.org/x/net/html"

	"github.com/5dollarhigh/grocerytrace/internal/receipt"
)

// ParseEML reads an RFC 5322 message and produces a raw document for
// the extraction pipeline. Returns an error only when the message
// itself cannot be decoded; sparse content is fine.
func ParseEML(r io.Reader) (receipt.RawDocument, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return receipt.RawDocument{}, fmt.Errorf("reading email: %w", err)
	}

	body, err := extractBody(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return receipt.RawDocument{}, fmt.Errorf("extracting email body: %w", err)
	}

	subject := msg.Header.Get("Subject")
	if decoded, err := new(mime.WordDecoder).DecodeHeader(subject); err == nil {
		subject = decoded
	}

	return receipt.RawDocument{
		Text:       body,
		Subject:    subject,
		Sender:     msg.Header.Get("From"),
		HeaderDate: msg.Header.Get("Date"),
		Source:     receipt.SourceEmail,
	}, nil
}

func extractBody(contentType, encoding string, body io.Reader) (string, error) {
	if contentType == "" {
		content, err := io.ReadAll(decodeTransfer(encoding, body))
		if err != nil {
			return "", err
		}

		return string(content), nil
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Unparseable content type, treat the body as plain text.
		content, readErr := io.ReadAll(decodeTransfer(encoding, body))
		if readErr != nil {
			return "", readErr
		}

		return string(content), nil
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipart(body, params["boundary"])
	}

	content, err := io.ReadAll(decodeTransfer(encoding, body))
	if err != nil {
		return "", err
	}

	if mediaType == "text/html" {
		return stripHTML(string(content)), nil
	}

	return string(content), nil
}

func extractMultipart(body io.Reader, boundary string) (string, error) {
	if boundary == "" {
		return "", fmt.Errorf("multipart message without boundary")
	}

	var merged strings.Builder
	reader := multipart.NewReader(body, boundary)

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		partBody, err := extractBody(part.Header.Get("Content-Type"), part.Header.Get("Content-Transfer-Encoding"), part)
		if err != nil {
			// One undecodable part does not ruin the rest of the body.
			continue
		}

		merged.WriteString(partBody)
	}

	return merged.String(), nil
}

func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

// stripHTML flattens markup to text, one line per text node, dropping
// script and style contents.
func stripHTML(content string) string {
	var text strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(content))

	var skipDepth int
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return text.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}

			if line := strings.TrimSpace(string(tokenizer.Text())); line != "" {
				text.WriteString(line)
				text.WriteString("\n")
			}
		}
	}
}
