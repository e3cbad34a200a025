// Package toc builds a table of contents from Markdown headings.
//
// Headings are lines starting with '#' at column 0. Each one becomes a list
// item linking to its GitHub-style anchor, indented two spaces per level
// below the top:
//
//	b := toc.NewBuilder()
//	out, err := b.GenerateFile("README.md")
//
// The first "# " heading is the document title and is left out, as are
// headings naming an existing table of contents. Code fences, HTML blocks and
// front matter are not recognised, and repeated titles share one anchor.
package toc
