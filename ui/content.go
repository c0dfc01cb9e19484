package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const aboutMarkdown = `This is a Periodic Table of the 16 Myers-Briggs Type Indicator (MBTI) personality
types inspired by Rob van Zoest and his Periodic Table of NLP Tasks.
As an MBTI fanatic I often find the elements hugely relatable, which motivated this visualization.
What about you? How many of these elements did you find relatable to your personality type?

If you're unsure of your personality type, try out the test [here](https://www.16personalities.com/free-personality-test)!

Disclaimer: May contain MBTI memes`

const footerMarkdown = `***

I hope you've enjoyed reading it as much as I did creating this project.
I'd love feedback on this, so if you want to reach out you can find me on [LinkedIn](https://www.linkedin.com/in/huijeewong/) :)`

// Content holds the static page copy rendered from markdown
type Content struct {
	About  template.HTML
	Footer template.HTML
}

// NewContent renders the About and footer blocks
func NewContent() Content {
	return Content{
		About:  renderMarkdown(aboutMarkdown),
		Footer: renderMarkdown(footerMarkdown),
	}
}

func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}
