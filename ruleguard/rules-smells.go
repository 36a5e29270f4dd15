package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

func smells(m dsl.Matcher) {
	// Two consecutive guard ifs returning the same value can merge with ||.
	m.Match(`if $c1 { return $ret }; if $c2 { return $ret }`).
		Report(`two consecutive guards return the same value; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { return $ret }`)

	// Loop variant of the same pattern.
	m.Match(`if $c1 { continue }; if $c2 { continue }`).
		Report(`two consecutive continues; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { continue }`)

	// Nested loops are worth a look in request-path code.
	m.Match(`for $*_ { for $*_ { $*_ } }`).
		Report(`nested for-loop; consider extracting inner loop logic or reducing algorithmic complexity`)

	// http.ResponseWriter writes after WriteHeader already sent a status
	// show up as superfluous-WriteHeader warnings at runtime; catch the
	// obvious double call statically.
	m.Match(`$w.WriteHeader($_); $w.WriteHeader($_)`).
		Report(`WriteHeader called twice on the same response`)
}
