// Package loader reads declarative notification documents written in JSON or
// YAML and builds the adaptive and tile models from them. Every value passes
// through the model setters, so a document that loads successfully always
// converts to elements.
//
// A document looks like:
//
//	texts:
//	  - text: Build finished
//	    style: title
//	    maxLines: 2
//	  - binding: summary
//	    align: center
//	backgroundImage:
//	  src: ms-appx:///Assets/bg.png
//	  crop: circle
//	  overlay: 20
//
// Entities in literal text are decoded and any markup, encoded or not, is
// stripped before the text reaches the model.
package loader
