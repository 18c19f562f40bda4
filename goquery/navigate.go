// Package goquery extracts quizzes from quiz-results HTML using goquery.
//
// The exporting platform marks up each question the same way: an element
// with aria-label="Question" wraps a div.display_question container whose
// remaining class names identify the question type, and the answer UI uses a
// fixed vocabulary of class names (answer, correct_answer, selected_answer,
// answer_text, answer_match_left, ...). Everything in this package relies on
// those conventions and nothing else.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quizdoc"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Blank replaces fill-in inputs inside a question prompt.
const Blank = "__________"

// TypeNotFound is the unrecognized-bucket key for fragments without a type class.
const TypeNotFound = "QUESTION TYPE NOT FOUND"

// noiseSelector matches elements that never carry question or answer text.
const noiseSelector = "img, a, script, noscript"

// genericClasses are present on every question container and never name a type.
var genericClasses = map[string]bool{
	"display_question": true,
	"question":         true,
}

// Title returns the page title. Pages without a usable <title> get a unique
// placeholder so their output files never collide.
func Title(doc *goquery.Document) string {
	if title := quizdoc.CleanString(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return "No Title Found_" + uuid.NewString()
}

// Fragments returns the question fragments of a page in document order.
func Fragments(doc *goquery.Document) *goquery.Selection {
	return doc.Find(`[aria-label="Question"]`)
}

// ClassNames returns the class names of the fragment's div.display_question
// container with the generic names removed. The container is the fragment
// itself when it carries that class, otherwise its first matching descendant.
//
// The first name is taken as the question type. A container is expected to
// carry exactly one non-generic class; callers should treat more than one as
// a warning sign that the markup has changed.
func ClassNames(fragment *goquery.Selection) []string {
	container := fragment
	if !fragment.Is("div.display_question") {
		container = fragment.Find("div.display_question").First()
	}
	if container.Length() == 0 {
		return nil
	}

	var names []string
	for _, name := range strings.Fields(container.AttrOr("class", "")) {
		if !genericClasses[name] {
			names = append(names, name)
		}
	}
	return names
}

// StripNoise removes images, links, scripts and noscript blocks below sel.
func StripNoise(sel *goquery.Selection) {
	sel.Find(noiseSelector).Remove()
}

// Text returns the normalized text of sel without modifying it. Noise
// elements are ignored and text nodes holding nothing but non-breaking spaces
// are dropped.
func Text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	clone := sel.Clone()
	StripNoise(clone)
	dropNBSP(clone)
	return quizdoc.CleanString(clone.Text())
}

// PromptText is like Text but keeps fill-in inputs visible as Blank.
func PromptText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	clone := sel.Clone()
	StripNoise(clone)
	dropNBSP(clone)
	clone.Find("input").ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: " " + Blank + " "})
	return quizdoc.CleanString(clone.Text())
}

// dropNBSP empties text nodes consisting only of non-breaking spaces.
func dropNBSP(sel *goquery.Selection) {
	for _, root := range sel.Nodes {
		walk(root, func(n *html.Node) {
			if n.Type == html.TextNode && n.Data != "" && strings.Trim(n.Data, "\u00a0") == "" {
				n.Data = ""
			}
		})
	}
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// QuestionText returns the prompt of a fragment. The prompt is stored as
// escaped HTML inside textarea[name=question_text]; it is parsed again so
// that markup, images and fill-in inputs are handled like the rest of the
// page. Returns "" if the fragment has no such textarea.
func QuestionText(fragment *goquery.Selection) string {
	textarea := fragment.Find(`textarea[name="question_text"]`).First()
	if textarea.Length() == 0 {
		return ""
	}

	raw := textarea.Text()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return quizdoc.CleanString(raw)
	}
	return PromptText(doc.Find("body"))
}

// TextByFilter returns the text of every div.<outer> below sel. When inner is
// set, the text of the first div.<inner> inside each match is used instead.
// The result is normalized with quizdoc.CleanList.
func TextByFilter(sel *goquery.Selection, outer, inner string) []string {
	var texts []string
	sel.Find("div." + outer).Each(func(_ int, s *goquery.Selection) {
		if inner != "" {
			s = s.Find("div." + inner).First()
		}
		texts = append(texts, Text(s))
	})
	return quizdoc.CleanList(texts)
}

// InputValue returns the normalized value of the first input named name
// below sel, or "" if there is none.
func InputValue(sel *goquery.Selection, name string) string {
	input := sel.Find(`input[name="` + name + `"]`).First()
	return quizdoc.CleanString(input.AttrOr("value", ""))
}

// outerHTML renders sel including its own tag. Rendering errors yield "".
func outerHTML(sel *goquery.Selection) string {
	s, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return s
}
