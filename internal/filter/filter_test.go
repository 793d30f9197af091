package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpression(t *testing.T) {
	got := Expression("to", []string{"a", "b"})
	assert.Equal(t, "data['to'] in ['a','b']", got)
}

func TestExpression_SingleAccount(t *testing.T) {
	got := Expression("to", []string{"treasury1111"})
	assert.Equal(t, "data['to'] in ['treasury1111']", got)
}

func TestExpression_EachAccountOnce(t *testing.T) {
	accounts := []string{"alice", "bob", "carol"}
	got := Expression("to", accounts)

	for _, a := range accounts {
		assert.Equal(t, 1, strings.Count(got, "'"+a+"'"), "account %s", a)
	}
}

func TestExpression_Field(t *testing.T) {
	got := Expression("from", []string{"alice"})
	assert.Equal(t, "data['from'] in ['alice']", got)
}

func TestExpression_NoAccounts(t *testing.T) {
	got := Expression("to", nil)
	assert.Equal(t, "data['to'] in []", got)
}
