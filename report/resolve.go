package report

import "strings"

// resolve searches table for an entry matching token, following the
// same rules as the original name resolver: an exact case-insensitive
// match wins immediately; failing that, entries within the first three
// positions of the table may be an indexed pair (name ending in '#')
// whose numeric suffix is parsed and range-checked against the pair's
// two values.
//
// It returns the matched (or synthesized) Encoding with found set to
// true; when no entry matches, found is false and the ErrorKind is
// either ErrNone or names why the token was rejected by an indexed
// pair (ErrInternal for a malformed pair in the table).
func resolve(table *Table, token string) (Encoding, ErrorKind, bool) {
	if table == nil || token == "" {
		return Encoding{}, ErrNone, false
	}
	entries := *table
	for i := 0; i < len(entries); i++ {
		e := entries[i]
		if strings.EqualFold(e.Name, token) {
			return e, ErrNone, true
		}
		if i >= 3 {
			continue
		}
		hashIdx := strings.IndexByte(e.Name, '#')
		if hashIdx < 0 {
			continue
		}
		if hashIdx != len(e.Name)-1 {
			return Encoding{}, ErrInternal, false
		}
		if i+1 >= len(entries) || entries[i+1].Name != e.Name {
			return Encoding{}, ErrInternal, false
		}
		// A '#' name within the first three entries commits the
		// search to this indexed pair: once found, a mismatch here
		// is reported directly rather than tried against later
		// entries, exactly as the original resolver only ever looks
		// for one indexed pair per table.
		lo, hi := e, entries[i+1]
		prefix := e.Name[:hashIdx]
		if len(token) <= len(prefix) || !strings.EqualFold(token[:len(prefix)], prefix) {
			return Encoding{}, ErrInvalidArgumentName, false
		}
		suffix := token[len(prefix):]
		var num uint32
		for _, c := range []byte(suffix) {
			if c < '0' || c > '9' {
				return Encoding{}, ErrUnexpectedArgumentNameCharacter, false
			}
			next := num*10 + uint32(c-'0')
			if next < num {
				return Encoding{}, ErrArgumentIndexOutOfRange, false
			}
			num = next
		}
		if num < lo.Value || num > hi.Value {
			return Encoding{}, ErrArgumentIndexOutOfRange, false
		}
		if len(suffix) > 1 && suffix[0] == '0' && num != 0 {
			return Encoding{}, ErrInvalidArgumentName, false
		}
		return Encoding{Name: e.Name, Value: num, Type: e.Type, Clear: e.Clear, Child: e.Child}, ErrNone, true
	}
	return Encoding{}, ErrNone, false
}
