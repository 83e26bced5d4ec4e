// Package ssml reduces SSML speech markup to the plain text it speaks.
package ssml

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strip removes all markup from message and collapses whitespace. Messages
// without markup are returned trimmed but otherwise unchanged.
func Strip(message string) string {
	if !strings.ContainsRune(message, '<') {
		return strings.TrimSpace(message)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(message))
	if err != nil {
		return strings.TrimSpace(message)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
