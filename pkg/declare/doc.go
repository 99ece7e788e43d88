// Package declare builds widget trees from YAML documents.
//
// A document has a single root node. Every node names its type and the
// fields that type understands:
//
//	root:
//	  type: container
//	  style:
//	    background: white
//	    alignment: centerLeft
//	  children:
//	    - type: text
//	      text: Hello
//	      classes: [title]
//	    - type: single
//	      padding: 8
//	      style: { width: 120px, height: matchContent, border: { width: 1, color: gray } }
//	      child:
//	        type: html
//	        markup: "<b>bold</b>"
//	    - type: builder
//	      child: { type: text, text: rebuilt on every render }
//
// Node types are container, single, text, html and builder.
package declare
