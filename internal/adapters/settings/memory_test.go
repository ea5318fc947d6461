package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Bool(t *testing.T) {
	m := NewMemory()

	assert.True(t, m.GetBool("missing", true))
	assert.False(t, m.GetBool("missing", false))

	m.SetBool("recheck_cleared", true)
	assert.True(t, m.GetBool("recheck_cleared", false))

	m.Set("broken", "not-a-bool")
	assert.True(t, m.GetBool("broken", true))
}

func TestMemory_Int(t *testing.T) {
	m := NewMemory()

	assert.Equal(t, 5, m.GetInt("missing", 5))

	m.SetInt("uppercase_max", 7)
	assert.Equal(t, 7, m.GetInt("uppercase_max", 5))

	m.Set("broken", "seven")
	assert.Equal(t, 5, m.GetInt("broken", 5))
}

func TestMemory_String(t *testing.T) {
	m := NewMemory()

	assert.Equal(t, "fallback", m.GetString("missing", "fallback"))

	m.Set("greeting", "hello")
	assert.Equal(t, "hello", m.GetString("greeting", "fallback"))

	m.Delete("greeting")
	assert.Equal(t, "fallback", m.GetString("greeting", "fallback"))
}

func TestMemory_Strings(t *testing.T) {
	m := NewMemory()

	def := []string{"a", "b"}
	assert.Equal(t, def, m.GetStrings("missing", def))

	m.Set("allow_email_domains", "example.org, corp.example ,other.example")
	assert.Equal(t,
		[]string{"example.org", "corp.example", "other.example"},
		m.GetStrings("allow_email_domains", nil))
}
