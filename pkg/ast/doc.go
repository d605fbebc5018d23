// Package ast provides the in-memory representation of a parsed .reg file.
//
// A Document is an ordered list of Sections, one per [path] header, each
// holding its Entries in file order. Documents are built by the regtext
// parser in a single pass and are not modified afterwards; the integrity
// comparator and the appliers only read them.
//
// # Core Types
//
// Document owns its Sections, Section owns its Entries. An Entry pairs a
// value name ("" for the default value) with a types.Value whose Kind says
// how the value was tagged in the file.
//
// # Validation
//
// The Limits type enforces Windows Registry constraints before a document is
// handed to an applier. DefaultLimits matches what Windows documents;
// RelaxedLimits and StrictLimits widen or narrow those bounds.
//
// # Usage Example
//
//	doc, err := reg.ParseFile("settings.reg", reg.ParseOptions{})
//	if err != nil {
//		return err
//	}
//	if err := doc.Validate(ast.DefaultLimits()); err != nil {
//		return err
//	}
//	doc.Walk(func(s *ast.Section, e *ast.Entry) error {
//		fmt.Printf("%s\\%s = %s\n", s.Path, e.Name, e.Value)
//		return nil
//	})
package ast
