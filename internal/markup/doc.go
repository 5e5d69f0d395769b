// Package markup turns lightly marked-up text into an ordered list of blocks.
//
// The recognized subset is deliberately small:
//
//	# Heading .. #### Heading    heading levels 1-4
//	**bold**  *italic*          inline emphasis, bold wins over italic
//	- item  * item  + item      bullet list items (also "•")
//	1. item                     numbered list items
//	blank line                  paragraph separator
//	\f (form feed)              page break
//
// Plain text is simply markup without markers: it becomes paragraph blocks.
//
// Normalize is total. Any string, including malformed markup and the empty
// string, yields a best-effort block sequence; unmatched emphasis markers are
// kept as literal text.
package markup
