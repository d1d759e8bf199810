// Package query runs SQL-shaped queries against a JSON document.
//
// The language is deliberately small:
//
//	SELECT <column>[, <column>...] FROM <source> [WHERE <condition>]
//
// Columns are dotted paths into each record, such as detail.service, or a
// single * for every top-level key of the first record. The condition is a
// flat list of comparisons joined by AND and OR. There are no parentheses
// and no precedence: connectives apply strictly left to right, so
//
//	a = 1 OR b = 2 AND c = 3
//
// means (a = 1 OR b = 2) AND c = 3.
//
// # Comparisons
//
// Every comparison has the form <path> <op> <literal> where op is one of
// =, <, >, <= or >=. The literal is either single-quoted or a bare word up
// to the next whitespace. The path is resolved against the record and
// compared by its text; a missing path compares as the empty string.
//
//   - = compares text exactly
//   - <, >, <= and >= compare numerically when both sides look like numbers
//     and lexicographically otherwise
//
// The conditions 1 = 1 and 'T' = 'T' match every record without being
// evaluated.
//
// # Parameters
//
// Named placeholders such as :id are replaced with the quoted string form of
// the matching entry in Params before the condition is tokenized:
//
//	h, err := query.NewHandler("HEALTH", text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rs, err := h.Execute(
//	    "select id, detail.service from HEALTH where id = :id",
//	    query.Params{"id": "A1"},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rs.First().GetString("detail.service", ""))
//
// A placeholder without a value fails the query with ErrUnboundParameter.
//
// # Schema discovery
//
// Handler.Keys lists the dotted key paths of the first record down to a
// given depth, and Handler.KeysMatching filters them with wildcard patterns:
//
//	h.KeysMatching(2, "detail.*Code")
package query
