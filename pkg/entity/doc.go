// Package entity extracts domain records (customers, orders, jobs,
// items, resources, price lines, pricelists, properties) out of the
// generic XML tree produced by pkg/xmltree.
//
// The remote API is inconsistent about where a record sits in a
// response and how its fields are capitalized, both across operations
// and across API versions. Every parser therefore locates its record
// with the same ordered strategy:
//
//  1. A directly named container (Customer/customer, Order/order, ...).
//  2. The current node itself, duck-typed by the presence of at least
//     two expected field names.
//  3. Known wrapper keys: return, any key ending in "Result", data.
//  4. An exhaustive depth-first search of all object-valued children.
//
// Field coercion tries several capitalization variants per field and
// takes the first non-empty hit. Fields the parser does not recognize
// are preserved verbatim in the record's Extra map so callers are
// never silently stripped of data.
//
// Parsers degrade, they do not fail: when no record shape can be
// located they report (nil, false) and callers fall back to the raw
// response plus its status fields.
package entity
