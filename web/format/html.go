package format

import "github.com/gomarkdown/markdown"

// ToHTML renders a markdown message body to HTML for web clients.
func ToHTML(text string) string {
	return string(markdown.ToHTML([]byte(text), nil, nil))
}
