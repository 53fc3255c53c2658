package render

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Strip converts HN's limited comment HTML to plain text: tags removed,
// entities decoded, whitespace collapsed to single spaces. HN only emits
// <p>, <a>, <i>, <code>, <pre> and entities, but the tokenizer handles
// anything else by dropping the tags and keeping the text.
func Strip(raw string) string {
	if raw == "" {
		return ""
	}

	// Entities first, so the tokenizer sees real characters.
	raw = html.UnescapeString(raw)

	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	var sb strings.Builder
	var anchorURL string

	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			return normalize(sb.String())

		case xhtml.StartTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "p", "pre", "br":
				sb.WriteString(" ")
			case "a":
				for _, attr := range t.Attr {
					if attr.Key == "href" {
						anchorURL = attr.Val
					}
				}
			}

		case xhtml.SelfClosingTagToken:
			if tokenizer.Token().Data == "br" {
				sb.WriteString(" ")
			}

		case xhtml.EndTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "p", "pre":
				sb.WriteString(" ")
			case "a":
				// Keep the target when the link text doesn't already show it.
				if anchorURL != "" && !strings.HasSuffix(strings.TrimSpace(sb.String()), anchorURL) {
					sb.WriteString(" (")
					sb.WriteString(anchorURL)
					sb.WriteString(")")
				}
				anchorURL = ""
			}

		case xhtml.TextToken:
			sb.WriteString(tokenizer.Token().Data)
		}
	}
}

// normalize collapses all whitespace runs, including newlines left over from
// pre blocks, into single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
