package filter

import "strings"

// Expression builds the record filter evaluated by the extractor, selecting
// transfers whose field value is one of the given accounts. With field "to"
// and accounts [alice bob] it returns:
//
//	data['to'] in ['alice','bob']
//
// Each account appears exactly once, single-quoted and comma-separated.
func Expression(field string, accounts []string) string {
	quoted := make([]string, len(accounts))
	for i, a := range accounts {
		quoted[i] = "'" + a + "'"
	}

	var b strings.Builder
	b.WriteString("data['")
	b.WriteString(field)
	b.WriteString("'] in [")
	b.WriteString(strings.Join(quoted, ","))
	b.WriteString("]")
	return b.String()
}
