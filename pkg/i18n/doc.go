// Package i18n loads per-language message catalogs for validation failures.
//
// A catalog document is keyed by language at the root. Everything below a
// language is flattened into dot-separated keys, so nested documents line up
// with "<field>.<rule>" failure keys:
//
//	en:
//	  email:
//	    required: "E-mail is required."
//	    email: "E-mail is not valid."
//
// yields the key "email.required" for language "en".
//
// Sources are pluggable through the Adapter interface. MapAdapter serves
// in-memory documents, FileAdapter reads a single YAML or JSON file and
// FSAdapter reads every supported file in a directory of an fs.FS (embed.FS
// included). Parsers are picked by file extension with NewParserForFile.
//
// Language codes are canonicalised with golang.org/x/text/language, so "EN-us"
// and "en-US" refer to the same catalog.
//
// # Usage
//
//	cat, err := i18n.NewCatalog(ctx, i18n.NewFileAdapter("./messages.yaml"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//	    return err
//	}
//	msgs, _ := cat.Messages("de")
package i18n
