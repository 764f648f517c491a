package locator

import (
	"fmt"
	"strconv"
	"strings"
)

// ClassContains builds a selector for elements whose class contains fragment,
// optionally restricted to tag
func ClassContains(fragment string, tag ...string) string {
	return prefixTag(tag) + Attr("class*", fragment)
}

// ClassStartsWith builds a selector for elements whose class starts with prefix
func ClassStartsWith(prefix string, tag ...string) string {
	return prefixTag(tag) + Attr("class^", prefix)
}

// Attr builds an attribute selector; name may carry an operator suffix such as "href^"
func Attr(name, value string) string {
	return fmt.Sprintf("[%s=%s]", name, strconv.Quote(value))
}

// SVGSize selects an svg icon by its declared width and height
func SVGSize(width, height int) string {
	return "svg" + Attr("width", strconv.Itoa(width)) + Attr("height", strconv.Itoa(height))
}

// TestIDSelector selects by data-testid when a plain CSS selector is needed
func TestIDSelector(id string, tag ...string) string {
	return prefixTag(tag) + Attr("data-testid", id)
}

func prefixTag(tag []string) string {
	return strings.Join(tag, "")
}
